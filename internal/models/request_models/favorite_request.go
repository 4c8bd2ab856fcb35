package request_models

type FavoriteRequest struct {
	ActivityID int `json:"activity_id" binding:"required"`
}
