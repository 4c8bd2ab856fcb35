package controllers_fx

import (
	"go.uber.org/fx"

	"escapade/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewFavoriteController),
	fx.Provide(controllers.NewRatingController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewDestinationController))
