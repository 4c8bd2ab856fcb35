package recommendation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"escapade/internal/catalog"
	"escapade/internal/repositories"
	"escapade/internal/services"
	"escapade/pkg/utils"
)

var Module = fx.Provide(
	provideRecommendationService, provideEmbeddingService, provideEmbeddingRepo)

func provideEmbeddingRepo(db *gorm.DB) repositories.EmbeddingRepository {
	return repositories.NewEmbeddingRepository(db)
}

func provideRecommendationService(
	activities []catalog.Activity,
	client utils.RecommendationClientInterface,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(activities, client)
}

func provideEmbeddingService(
	activities []catalog.Activity,
	embeddingRepo repositories.EmbeddingRepository,
	client utils.EmbeddingClientInterface,
) services.EmbeddingServiceInterface {
	return services.NewEmbeddingService(activities, embeddingRepo, client)
}
