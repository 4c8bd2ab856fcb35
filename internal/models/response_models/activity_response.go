package response_models

import "escapade/internal/catalog"

// ActivityResponse carries a catalog entry plus the optional computed
// distance from the caller's position.
type ActivityResponse struct {
	catalog.Activity
	DistanceKm   *float64 `json:"distance_km,omitempty"`
	DistanceText string   `json:"distance_text,omitempty"`
}

func FromActivity(a catalog.Activity) ActivityResponse {
	return ActivityResponse{Activity: a}
}

func FromActivities(activities []catalog.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, FromActivity(a))
	}
	return out
}
