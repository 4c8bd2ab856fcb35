package memcache_fx

import (
	"go.uber.org/fx"

	mem "escapade/pkg/memcache"
)

var Module = fx.Provide(provideQuizSessionStore)

func provideQuizSessionStore() mem.QuizSessionStore {
	return mem.NewQuizSessions(0)
}
