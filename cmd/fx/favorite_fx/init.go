package favorite_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"escapade/internal/catalog"
	"escapade/internal/repositories"
	"escapade/internal/services"
)

var Module = fx.Provide(
	provideFavoriteService, provideFavoriteRepo)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(favoriteRepo repositories.FavoriteRepository, activities []catalog.Activity) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, activities)
}
