package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"escapade/internal/models/db_models"
)

type ReviewRepository interface {
	// Replace deletes any previous review by the same account for the same
	// activity before inserting, in one transaction.
	Replace(ctx context.Context, review *db_models.Review) error
	ListByActivity(ctx context.Context, activityID int) ([]db_models.Review, error)
	FindByAccountAndActivity(ctx context.Context, accountID uuid.UUID, activityID int) (*db_models.Review, error)
	AverageForActivity(ctx context.Context, activityID int) (float64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Replace(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("account_id = ? AND activity_id = ?", review.AccountID, review.ActivityID).
			Delete(&db_models.Review{}).Error
		if err != nil {
			return err
		}
		return tx.Create(review).Error
	})
}

func (r *reviewRepository) ListByActivity(ctx context.Context, activityID int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByAccountAndActivity(ctx context.Context, accountID uuid.UUID, activityID int) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND activity_id = ?", accountID, activityID).
		First(&review).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) AverageForActivity(ctx context.Context, activityID int) (float64, error) {
	var average float64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Where("activity_id = ?", activityID).
		Scan(&average).Error
	if err != nil {
		return 0, err
	}
	return average, nil
}
