package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"escapade/internal/models/request_models"
	"escapade/internal/services"
	"escapade/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// SubmitReview godoc
// @Summary Review an activity
// @Description Post a review; a new review from the same user replaces the previous one
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.ReviewRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews [post]
func (r *ReviewController) SubmitReview(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req request_models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := r.reviewService.AddReview(c.Request.Context(), accountID, req.ActivityID, req.Rating, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review saved")
}

// ListReviews godoc
// @Summary List reviews for an activity
// @Description Newest-first reviews plus the running average
// @Tags Reviews
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Router /activities/{id}/reviews [get]
func (r *ReviewController) ListReviews(c *gin.Context) {
	activityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	reviews, err := r.reviewService.ListByActivity(c.Request.Context(), activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	average, err := r.reviewService.AverageRating(c.Request.Context(), activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"reviews": reviews, "average": average}, "Reviews fetched successfully")
}
