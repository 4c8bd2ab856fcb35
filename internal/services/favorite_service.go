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

type FavoriteServiceInterface interface {
	AddFavorite(ctx context.Context, accountID uuid.UUID, activityID int) error
	RemoveFavorite(ctx context.Context, accountID uuid.UUID, activityID int) error
	IsFavorite(ctx context.Context, accountID uuid.UUID, activityID int) (bool, error)
	ListFavorites(ctx context.Context, accountID uuid.UUID) ([]response_models.ActivityResponse, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	activities   []catalog.Activity
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, activities []catalog.Activity) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		activities:   activities,
	}
}

func (f *FavoriteService) AddFavorite(ctx context.Context, accountID uuid.UUID, activityID int) error {
	if _, ok := catalog.ByID(f.activities, activityID); !ok {
		return utils.ErrActivityNotFound
	}

	err := f.favoriteRepo.Add(ctx, &db_models.Favorite{
		AccountID:  accountID,
		ActivityID: activityID,
	})
	if err != nil {
		log.Printf("Error adding favorite: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FavoriteService) RemoveFavorite(ctx context.Context, accountID uuid.UUID, activityID int) error {
	if err := f.favoriteRepo.Remove(ctx, accountID, activityID); err != nil {
		log.Printf("Error removing favorite: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FavoriteService) IsFavorite(ctx context.Context, accountID uuid.UUID, activityID int) (bool, error) {
	exists, err := f.favoriteRepo.Exists(ctx, accountID, activityID)
	if err != nil {
		log.Printf("Error checking favorite: %v", err)
		return false, utils.ErrDatabaseError
	}
	return exists, nil
}

// ListFavorites resolves stored activity IDs against the catalog. IDs that no
// longer resolve are skipped rather than failing the whole listing.
func (f *FavoriteService) ListFavorites(ctx context.Context, accountID uuid.UUID) ([]response_models.ActivityResponse, error) {
	favorites, err := f.favoriteRepo.ListByAccount(ctx, accountID)
	if err != nil {
		log.Printf("Error listing favorites: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ActivityResponse, 0, len(favorites))
	for _, fav := range favorites {
		if activity, ok := catalog.ByID(f.activities, fav.ActivityID); ok {
			responses = append(responses, response_models.FromActivity(activity))
		}
	}
	return responses, nil
}
