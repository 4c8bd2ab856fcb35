package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"escapade/internal/models/db_models"
)

// In-memory repository fakes shared by the service tests.

type mockAccountRepo struct {
	accounts  map[string]*db_models.Account
	insertErr error
	updateErr error
	findErr   error
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (m *mockAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	m.accounts[account.ID.String()] = account
	return nil
}

func (m *mockAccountRepo) Update(_ context.Context, account *db_models.Account) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.accounts[account.ID.String()] = account
	return nil
}

func (m *mockAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.accounts[id], nil
}

func (m *mockAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

type favKey struct {
	account  uuid.UUID
	activity int
}

type mockFavoriteRepo struct {
	favorites map[favKey]bool
	order     []favKey
	err       error
}

func newMockFavoriteRepo() *mockFavoriteRepo {
	return &mockFavoriteRepo{favorites: make(map[favKey]bool)}
}

func (m *mockFavoriteRepo) Add(_ context.Context, fav *db_models.Favorite) error {
	if m.err != nil {
		return m.err
	}
	key := favKey{fav.AccountID, fav.ActivityID}
	if !m.favorites[key] {
		m.favorites[key] = true
		m.order = append(m.order, key)
	}
	return nil
}

func (m *mockFavoriteRepo) Remove(_ context.Context, accountID uuid.UUID, activityID int) error {
	if m.err != nil {
		return m.err
	}
	delete(m.favorites, favKey{accountID, activityID})
	return nil
}

func (m *mockFavoriteRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]db_models.Favorite, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []db_models.Favorite
	for _, key := range m.order {
		if key.account == accountID && m.favorites[key] {
			out = append(out, db_models.Favorite{AccountID: key.account, ActivityID: key.activity})
		}
	}
	return out, nil
}

func (m *mockFavoriteRepo) Exists(_ context.Context, accountID uuid.UUID, activityID int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.favorites[favKey{accountID, activityID}], nil
}

type mockRatingRepo struct {
	ratings     map[favKey]*db_models.Rating
	updateCalls int
	createCalls int
	err         error
}

func newMockRatingRepo() *mockRatingRepo {
	return &mockRatingRepo{ratings: make(map[favKey]*db_models.Rating)}
}

func (m *mockRatingRepo) Create(_ context.Context, rating *db_models.Rating) error {
	if m.err != nil {
		return m.err
	}
	m.createCalls++
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	m.ratings[favKey{rating.AccountID, rating.ActivityID}] = rating
	return nil
}

func (m *mockRatingRepo) Update(_ context.Context, rating *db_models.Rating) error {
	if m.err != nil {
		return m.err
	}
	m.updateCalls++
	m.ratings[favKey{rating.AccountID, rating.ActivityID}] = rating
	return nil
}

func (m *mockRatingRepo) FindByAccountAndActivity(_ context.Context, accountID uuid.UUID, activityID int) (*db_models.Rating, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.ratings[favKey{accountID, activityID}], nil
}

func (m *mockRatingRepo) ListByActivity(_ context.Context, activityID int) ([]db_models.Rating, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []db_models.Rating
	for _, r := range m.ratings {
		if r.ActivityID == activityID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRatingRepo) AverageForActivity(_ context.Context, activityID int) (float64, int64, error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	sum, count := 0, int64(0)
	for _, r := range m.ratings {
		if r.ActivityID == activityID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type mockReviewRepo struct {
	reviews map[favKey]*db_models.Review
	err     error
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{reviews: make(map[favKey]*db_models.Review)}
}

func (m *mockReviewRepo) Replace(_ context.Context, review *db_models.Review) error {
	if m.err != nil {
		return m.err
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	m.reviews[favKey{review.AccountID, review.ActivityID}] = review
	return nil
}

func (m *mockReviewRepo) ListByActivity(_ context.Context, activityID int) ([]db_models.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []db_models.Review
	for _, r := range m.reviews {
		if r.ActivityID == activityID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockReviewRepo) FindByAccountAndActivity(_ context.Context, accountID uuid.UUID, activityID int) (*db_models.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.reviews[favKey{accountID, activityID}], nil
}

func (m *mockReviewRepo) AverageForActivity(_ context.Context, activityID int) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	sum, count := 0, 0
	for _, r := range m.reviews {
		if r.ActivityID == activityID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

// mockRecommendationClient scripts the chat model.
type mockRecommendationClient struct {
	ids   []int
	err   error
	calls int
}

func (m *mockRecommendationClient) RecommendActivityIDs(_ context.Context, _ string) ([]int, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.ids, nil
}

var errMockDB = errors.New("mock database failure")
