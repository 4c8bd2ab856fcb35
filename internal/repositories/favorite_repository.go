package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"escapade/internal/models/db_models"
)

type FavoriteRepository interface {
	Add(ctx context.Context, fav *db_models.Favorite) error
	Remove(ctx context.Context, accountID uuid.UUID, activityID int) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Favorite, error)
	Exists(ctx context.Context, accountID uuid.UUID, activityID int) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (f *favoriteRepository) Add(ctx context.Context, fav *db_models.Favorite) error {
	exists, err := f.Exists(ctx, fav.AccountID, fav.ActivityID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return f.db.WithContext(ctx).Create(fav).Error
}

func (f *favoriteRepository) Remove(ctx context.Context, accountID uuid.UUID, activityID int) error {
	err := f.db.WithContext(ctx).
		Where("account_id = ? AND activity_id = ?", accountID, activityID).
		Delete(&db_models.Favorite{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (f *favoriteRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Favorite, error) {
	var favorites []db_models.Favorite
	err := f.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (f *favoriteRepository) Exists(ctx context.Context, accountID uuid.UUID, activityID int) (bool, error) {
	var count int64
	err := f.db.WithContext(ctx).
		Model(&db_models.Favorite{}).
		Where("account_id = ? AND activity_id = ?", accountID, activityID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
