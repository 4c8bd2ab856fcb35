package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"escapade/internal/catalog"
	"escapade/internal/models/db_models"
	"escapade/internal/models/response_models"
	"escapade/internal/repositories"
	"escapade/pkg/utils"
)

// ReviewService is the older sibling of RatingService: reviews carry the
// author's display name and re-submitting replaces the previous review
// outright instead of updating it in place.
type ReviewServiceInterface interface {
	AddReview(ctx context.Context, accountID uuid.UUID, activityID, stars int, comment string) error
	ListByActivity(ctx context.Context, activityID int) ([]response_models.ReviewResponse, error)
	AverageRating(ctx context.Context, activityID int) (float64, error)
}

type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	accountRepo repositories.AccountRepository
	activities  []catalog.Activity
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	accountRepo repositories.AccountRepository,
	activities []catalog.Activity,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		accountRepo: accountRepo,
		activities:  activities,
	}
}

func (s *ReviewService) AddReview(ctx context.Context, accountID uuid.UUID, activityID, stars int, comment string) error {
	if stars < 1 || stars > 5 {
		return utils.ErrInvalidRating
	}
	if _, ok := catalog.ByID(s.activities, activityID); !ok {
		return utils.ErrActivityNotFound
	}

	account, err := s.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	err = s.reviewRepo.Replace(ctx, &db_models.Review{
		AccountID:  accountID,
		ActivityID: activityID,
		UserName:   account.FirstName,
		Rating:     stars,
		Comment:    comment,
	})
	if err != nil {
		log.Printf("Error saving review: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ReviewService) ListByActivity(ctx context.Context, activityID int) ([]response_models.ReviewResponse, error) {
	reviews, err := s.reviewRepo.ListByActivity(ctx, activityID)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, response_models.ReviewResponse{
			ID:         review.ID.String(),
			ActivityID: review.ActivityID,
			UserName:   review.UserName,
			Rating:     review.Rating,
			Comment:    review.Comment,
			CreatedAt:  review.CreatedAt,
		})
	}
	return responses, nil
}

func (s *ReviewService) AverageRating(ctx context.Context, activityID int) (float64, error) {
	average, err := s.reviewRepo.AverageForActivity(ctx, activityID)
	if err != nil {
		log.Printf("Error computing review average: %v", err)
		return 0, utils.ErrDatabaseError
	}
	return average, nil
}
