package quiz_fx

import (
	"go.uber.org/fx"

	"escapade/internal/catalog"
	"escapade/internal/services"
	mem "escapade/pkg/memcache"
)

var Module = fx.Provide(
	provideQuizService)

func provideQuizService(activities []catalog.Activity, sessions mem.QuizSessionStore) services.QuizServiceInterface {
	return services.NewQuizService(activities, sessions)
}
