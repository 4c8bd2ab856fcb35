package destination_fx

import (
	"go.uber.org/fx"

	"escapade/internal/services"
)

var Module = fx.Provide(
	provideDestinationService)

func provideDestinationService() services.DestinationServiceInterface {
	return services.NewDestinationService()
}
