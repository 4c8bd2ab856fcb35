package services

import (
	"errors"
	"testing"

	"escapade/internal/catalog"
	"escapade/pkg/utils"
)

func TestListActivitiesLocationFilter(t *testing.T) {
	svc := NewActivityService(quizTestCatalog())

	all := svc.ListActivities("", "", nil, nil)
	if len(all) != 3 {
		t.Errorf("unfiltered list has %d entries, want 3", len(all))
	}

	paris := svc.ListActivities("France", "paris", nil, nil)
	if len(paris) != 2 {
		t.Errorf("Paris list has %d entries, want 2", len(paris))
	}

	nothing := svc.ListActivities("Espagne", "", nil, nil)
	if len(nothing) != 0 {
		t.Errorf("Espagne list has %d entries, want 0", len(nothing))
	}
}

func TestListActivitiesAttachesDistances(t *testing.T) {
	activities := quizTestCatalog()
	activities[0].Coordinates = &catalog.Coordinates{Latitude: 48.8606, Longitude: 2.3376}

	svc := NewActivityService(activities)
	lat, lng := 48.85, 2.35
	got := svc.ListActivities("", "", &lat, &lng)

	var withDistance, withoutDistance int
	for _, a := range got {
		if a.DistanceKm != nil {
			withDistance++
			if a.DistanceText == "" {
				t.Errorf("activity %d has a distance but no display text", a.ID)
			}
		} else {
			withoutDistance++
		}
	}
	if withDistance != 1 || withoutDistance != 2 {
		t.Errorf("distances attached to %d entries, want exactly the 1 with coordinates", withDistance)
	}
}

func TestGetActivityByID(t *testing.T) {
	svc := NewActivityService(quizTestCatalog())

	got, err := svc.GetActivityByID(2)
	if err != nil {
		t.Fatalf("GetActivityByID error: %v", err)
	}
	if got.ID != 2 {
		t.Errorf("ID = %d, want 2", got.ID)
	}

	_, err = svc.GetActivityByID(404)
	if !errors.Is(err, utils.ErrActivityNotFound) {
		t.Errorf("err = %v, want ErrActivityNotFound", err)
	}
}

func TestCountriesAndCities(t *testing.T) {
	svc := NewActivityService(quizTestCatalog())

	countries := svc.Countries()
	if len(countries) != 1 || countries[0] != "France" {
		t.Errorf("Countries() = %v, want [France]", countries)
	}

	cities := svc.CitiesForCountry("France")
	found := map[string]bool{}
	for _, c := range cities {
		found[c] = true
	}
	if !found["Paris"] || !found["Lyon"] {
		t.Errorf("CitiesForCountry(France) = %v, want Paris and Lyon present", cities)
	}
}
