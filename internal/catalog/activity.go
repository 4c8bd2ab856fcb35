package catalog

// Coordinates is an optional latitude/longitude pair on a catalog entry.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Activity is one immutable catalog record. Display fields double as matching
// signal: Tags and Description are searched by the quiz matcher. Price and
// Duration stay strings because the catalog mixes formats ("Gratuit", "12,50€",
// "1h30") and parsing is a scoring concern, not a data concern.
type Activity struct {
	ID                    int          `json:"id"`
	City                  string       `json:"city"`
	Country               string       `json:"country,omitempty"`
	Title                 string       `json:"title"`
	Description           string       `json:"description"`
	Price                 string       `json:"price"`
	Duration              string       `json:"duration"`
	Distance              string       `json:"distance,omitempty"`
	Transport             string       `json:"transport,omitempty"`
	Image                 string       `json:"image,omitempty"`
	Tags                  []string     `json:"tags"`
	Address               string       `json:"address,omitempty"`
	OpeningHours          []string     `json:"openingHours,omitempty"`
	TransportDetails      string       `json:"transportDetails,omitempty"`
	BookingURL            string       `json:"bookingUrl,omitempty"`
	Accessible            bool         `json:"accessible,omitempty"`
	AccessibilityFeatures []string     `json:"accessibilityFeatures,omitempty"`
	Coordinates           *Coordinates `json:"coordinates,omitempty"`

	// Food-specific fields, present on restaurant-type entries only.
	Cuisine  string `json:"cuisine,omitempty"`
	MealType string `json:"mealType,omitempty"`
	Ambiance string `json:"ambiance,omitempty"`
	Dietary  string `json:"dietary,omitempty"`
	Taste    string `json:"taste,omitempty"`
}
