package services

import (
	"errors"
	"testing"

	"escapade/pkg/utils"
)

func TestListDestinationsSortedByName(t *testing.T) {
	svc := NewDestinationService()

	destinations := svc.ListDestinations()
	if len(destinations) != 7 {
		t.Fatalf("got %d destinations, want 7", len(destinations))
	}

	for i := 1; i < len(destinations); i++ {
		if destinations[i-1].Name > destinations[i].Name {
			t.Errorf("destinations not sorted: %q before %q", destinations[i-1].Name, destinations[i].Name)
		}
	}
}

func TestGetDestination(t *testing.T) {
	svc := NewDestinationService()

	japon, err := svc.GetDestination("japon")
	if err != nil {
		t.Fatalf("GetDestination error: %v", err)
	}
	if japon.Capital != "Tokyo" || japon.Currency != "JPY" {
		t.Errorf("japon = %q/%q, want Tokyo/JPY", japon.Capital, japon.Currency)
	}
	if len(japon.Preparations) == 0 || len(japon.Warnings) == 0 {
		t.Error("destination sheet incomplete")
	}

	_, err = svc.GetDestination("atlantide")
	if !errors.Is(err, utils.ErrDestinationNotFound) {
		t.Errorf("err = %v, want ErrDestinationNotFound", err)
	}
}
