package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"escapade/internal/models/request_models"
	"escapade/internal/services"
	"escapade/pkg/utils"
)

type RatingController struct {
	ratingService services.RatingServiceInterface
}

func NewRatingController(ratingService services.RatingServiceInterface) *RatingController {
	return &RatingController{
		ratingService: ratingService,
	}
}

// SubmitRating godoc
// @Summary Rate an activity
// @Description Create or update the authenticated user's rating for an activity
// @Tags Ratings
// @Accept json
// @Produce json
// @Param request body request_models.RatingRequest true "Rating payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ratings [post]
func (r *RatingController) SubmitRating(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req request_models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := r.ratingService.AddOrUpdateRating(c.Request.Context(), accountID, req.ActivityID, req.Rating, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Rating saved")
}

// ListRatings godoc
// @Summary List ratings for an activity
// @Tags Ratings
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Router /activities/{id}/ratings [get]
func (r *RatingController) ListRatings(c *gin.Context) {
	activityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	ratings, err := r.ratingService.ListByActivity(c.Request.Context(), activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ratings, "Ratings fetched successfully")
}

// RatingSummary godoc
// @Summary Rating average and count for an activity
// @Tags Ratings
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Router /activities/{id}/ratings/summary [get]
func (r *RatingController) RatingSummary(c *gin.Context) {
	activityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	summary, err := r.ratingService.Summary(c.Request.Context(), activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Rating summary fetched successfully")
}
