package activity_fx

import (
	"go.uber.org/fx"

	"escapade/internal/catalog"
	"escapade/internal/services"
)

var Module = fx.Provide(
	provideActivityService)

func provideActivityService(activities []catalog.Activity) services.ActivityServiceInterface {
	return services.NewActivityService(activities)
}
