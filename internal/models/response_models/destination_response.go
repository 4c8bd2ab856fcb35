package response_models

// TravelDestination is the static reference sheet shown in the travel
// planner panel: practical information per country, not tied to the catalog.
type TravelDestination struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Capital      string               `json:"capital"`
	Description  string               `json:"description"`
	Currency     string               `json:"currency"`
	Languages    DestinationLanguages `json:"languages"`
	WeeklyBudget WeeklyBudget         `json:"weekly_budget"`
	Ratings      DestinationRatings   `json:"ratings"`

	Preparations    []string `json:"preparations"`
	Recommendations []string `json:"recommendations"`
	Warnings        []string `json:"warnings"`

	OfficialLinks OfficialLinks `json:"official_links"`
}

type DestinationLanguages struct {
	Primary string `json:"primary"`
	French  string `json:"french"`
	English string `json:"english"`
}

type WeeklyBudget struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// DestinationRatings are 1-5 editorial grades.
type DestinationRatings struct {
	Cost          int `json:"cost"`
	Safety        int `json:"safety"`
	Culture       int `json:"culture"`
	Weather       int `json:"weather"`
	Accessibility int `json:"accessibility"`
}

type OfficialLinks struct {
	Embassy string `json:"embassy,omitempty"`
	Tourism string `json:"tourism,omitempty"`
	Health  string `json:"health,omitempty"`
}
