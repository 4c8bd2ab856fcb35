package services

import (
	"escapade/internal/catalog"
	"escapade/internal/matching"
	"escapade/internal/models/response_models"
	"escapade/pkg/utils"
)

type ActivityServiceInterface interface {
	ListActivities(country, city string, lat, lng *float64) []response_models.ActivityResponse
	GetActivityByID(id int) (response_models.ActivityResponse, error)
	Countries() []string
	CitiesForCountry(country string) []string
}

type ActivityService struct {
	activities []catalog.Activity
}

func NewActivityService(activities []catalog.Activity) ActivityServiceInterface {
	return &ActivityService{activities: activities}
}

// ListActivities applies the same hard location filter the quiz matcher uses,
// so browsing and quiz results agree on which entries belong to a country.
func (s *ActivityService) ListActivities(country, city string, lat, lng *float64) []response_models.ActivityResponse {
	answers := matching.Answers{}
	if country != "" {
		answers[matching.QuestionCountry] = country
	}
	if city != "" {
		answers[matching.QuestionCity] = city
	}

	filtered := matching.FilterByLocation(s.activities, answers)
	responses := response_models.FromActivities(filtered)

	if lat != nil && lng != nil {
		for i := range responses {
			if c := responses[i].Coordinates; c != nil {
				km := utils.CalculateDistance(*lat, *lng, c.Latitude, c.Longitude)
				responses[i].DistanceKm = &km
				responses[i].DistanceText = utils.FormatDistance(km)
			}
		}
	}

	return responses
}

func (s *ActivityService) GetActivityByID(id int) (response_models.ActivityResponse, error) {
	activity, ok := catalog.ByID(s.activities, id)
	if !ok {
		return response_models.ActivityResponse{}, utils.ErrActivityNotFound
	}
	return response_models.FromActivity(activity), nil
}

func (s *ActivityService) Countries() []string {
	return catalog.Countries(s.activities)
}

func (s *ActivityService) CitiesForCountry(country string) []string {
	return catalog.CitiesForCountry(s.activities, country)
}
