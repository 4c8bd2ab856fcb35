package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"escapade/internal/models/db_models"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *db_models.Rating) error
	Update(ctx context.Context, rating *db_models.Rating) error
	FindByAccountAndActivity(ctx context.Context, accountID uuid.UUID, activityID int) (*db_models.Rating, error)
	ListByActivity(ctx context.Context, activityID int) ([]db_models.Rating, error)
	AverageForActivity(ctx context.Context, activityID int) (float64, int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *db_models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) Update(ctx context.Context, rating *db_models.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) FindByAccountAndActivity(ctx context.Context, accountID uuid.UUID, activityID int) (*db_models.Rating, error) {
	var rating db_models.Rating
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND activity_id = ?", accountID, activityID).
		First(&rating).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) ListByActivity(ctx context.Context, activityID int) ([]db_models.Rating, error) {
	var ratings []db_models.Rating
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("updated_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) AverageForActivity(ctx context.Context, activityID int) (float64, int64, error) {
	var result struct {
		Average float64
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Rating{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Where("activity_id = ?", activityID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Average, result.Count, nil
}
