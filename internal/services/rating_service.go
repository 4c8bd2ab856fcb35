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

type RatingServiceInterface interface {
	// AddOrUpdateRating upserts: a second rating by the same account for the
	// same activity replaces the first.
	AddOrUpdateRating(ctx context.Context, accountID uuid.UUID, activityID, stars int, comment string) error
	ListByActivity(ctx context.Context, activityID int) ([]response_models.RatingResponse, error)
	Summary(ctx context.Context, activityID int) (response_models.RatingSummary, error)
}

type RatingService struct {
	ratingRepo repositories.RatingRepository
	activities []catalog.Activity
}

func NewRatingService(ratingRepo repositories.RatingRepository, activities []catalog.Activity) RatingServiceInterface {
	return &RatingService{
		ratingRepo: ratingRepo,
		activities: activities,
	}
}

func (r *RatingService) AddOrUpdateRating(ctx context.Context, accountID uuid.UUID, activityID, stars int, comment string) error {
	if stars < 1 || stars > 5 {
		return utils.ErrInvalidRating
	}
	if _, ok := catalog.ByID(r.activities, activityID); !ok {
		return utils.ErrActivityNotFound
	}

	existing, err := r.ratingRepo.FindByAccountAndActivity(ctx, accountID, activityID)
	if err != nil {
		log.Printf("Error fetching rating: %v", err)
		return utils.ErrDatabaseError
	}

	if existing != nil {
		existing.Rating = stars
		existing.Comment = comment
		if err := r.ratingRepo.Update(ctx, existing); err != nil {
			log.Printf("Error updating rating: %v", err)
			return utils.ErrDatabaseError
		}
		return nil
	}

	err = r.ratingRepo.Create(ctx, &db_models.Rating{
		AccountID:  accountID,
		ActivityID: activityID,
		Rating:     stars,
		Comment:    comment,
	})
	if err != nil {
		log.Printf("Error creating rating: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *RatingService) ListByActivity(ctx context.Context, activityID int) ([]response_models.RatingResponse, error) {
	ratings, err := r.ratingRepo.ListByActivity(ctx, activityID)
	if err != nil {
		log.Printf("Error listing ratings: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		responses = append(responses, response_models.RatingResponse{
			ID:         rating.ID.String(),
			ActivityID: rating.ActivityID,
			Rating:     rating.Rating,
			Comment:    rating.Comment,
			CreatedAt:  rating.CreatedAt,
			UpdatedAt:  rating.UpdatedAt,
		})
	}
	return responses, nil
}

func (r *RatingService) Summary(ctx context.Context, activityID int) (response_models.RatingSummary, error) {
	average, count, err := r.ratingRepo.AverageForActivity(ctx, activityID)
	if err != nil {
		log.Printf("Error computing rating summary: %v", err)
		return response_models.RatingSummary{}, utils.ErrDatabaseError
	}

	// One decimal, matching how stars are displayed.
	rounded := float64(int(average*10+0.5)) / 10

	return response_models.RatingSummary{
		ActivityID: activityID,
		Average:    rounded,
		Count:      count,
	}, nil
}
