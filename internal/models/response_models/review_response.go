package response_models

type RatingResponse struct {
	ID         string `json:"id"`
	ActivityID int    `json:"activity_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

type RatingSummary struct {
	ActivityID int     `json:"activity_id"`
	Average    float64 `json:"average"`
	Count      int64   `json:"count"`
}

type ReviewResponse struct {
	ID         string `json:"id"`
	ActivityID int    `json:"activity_id"`
	UserName   string `json:"user_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}
