package request_models

type RatingRequest struct {
	ActivityID int    `json:"activity_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment,omitempty"`
}

type ReviewRequest struct {
	ActivityID int    `json:"activity_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment,omitempty"`
}
