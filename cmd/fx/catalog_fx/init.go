package catalog_fx

import (
	"log"

	"go.uber.org/fx"

	"escapade/internal/catalog"
)

var Module = fx.Provide(
	provideCatalog)

func provideCatalog() []catalog.Activity {
	activities, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load activity catalog: %v", err)
	}
	return activities
}
