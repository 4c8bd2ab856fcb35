package rating_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"escapade/internal/catalog"
	"escapade/internal/repositories"
	"escapade/internal/services"
)

var Module = fx.Provide(
	provideRatingService, provideRatingRepo,
	provideReviewService, provideReviewRepo)

func provideRatingRepo(db *gorm.DB) repositories.RatingRepository {
	return repositories.NewRatingRepository(db)
}

func provideRatingService(ratingRepo repositories.RatingRepository, activities []catalog.Activity) services.RatingServiceInterface {
	return services.NewRatingService(ratingRepo, activities)
}

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	accountRepo repositories.AccountRepository,
	activities []catalog.Activity,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, accountRepo, activities)
}
