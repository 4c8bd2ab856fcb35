// Package catalog holds the static activity dataset and its lookup helpers.
// The catalog is loaded once at startup and never mutated afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/activities.json
var activitiesJSON []byte

// Load parses the embedded dataset and backfills missing countries from the
// city table. Entries whose city is unknown keep an empty country and are
// excluded from country-filtered views.
func Load() ([]Activity, error) {
	var activities []Activity
	if err := json.Unmarshal(activitiesJSON, &activities); err != nil {
		return nil, fmt.Errorf("parsing activity catalog: %w", err)
	}
	return Backfill(activities), nil
}

// Backfill fills in Country from the city table where the catalog entry
// omitted it. The input slice is not modified.
func Backfill(activities []Activity) []Activity {
	out := make([]Activity, len(activities))
	copy(out, activities)
	for i := range out {
		if out[i].Country == "" && out[i].City != "" {
			if country, ok := CityCountry(out[i].City); ok {
				out[i].Country = country
			}
		}
	}
	return out
}

// ByID does a linear scan; the catalog is small and static.
func ByID(activities []Activity, id int) (Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}
