package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"escapade/internal/models/request_models"
	"escapade/internal/services"
	"escapade/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

// AddFavorite godoc
// @Summary Add an activity to favorites
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body request_models.FavoriteRequest true "Favorite payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites [post]
func (f *FavoriteController) AddFavorite(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req request_models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := f.favoriteService.AddFavorite(c.Request.Context(), accountID, req.ActivityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite added")
}

// RemoveFavorite godoc
// @Summary Remove an activity from favorites
// @Tags Favorites
// @Produce json
// @Param activityId path int true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites/{activityId} [delete]
func (f *FavoriteController) RemoveFavorite(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	activityID, err := strconv.Atoi(c.Param("activityId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	if err := f.favoriteService.RemoveFavorite(c.Request.Context(), accountID, activityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite removed")
}

// ListFavorites godoc
// @Summary List the authenticated user's favorites
// @Tags Favorites
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites [get]
func (f *FavoriteController) ListFavorites(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	favorites, err := f.favoriteService.ListFavorites(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, favorites, "Favorites fetched successfully")
}

// FavoriteStatus godoc
// @Summary Check whether an activity is a favorite
// @Tags Favorites
// @Produce json
// @Param activityId path int true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites/{activityId}/status [get]
func (f *FavoriteController) FavoriteStatus(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	activityID, err := strconv.Atoi(c.Param("activityId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	isFavorite, err := f.favoriteService.IsFavorite(c.Request.Context(), accountID, activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"is_favorite": isFavorite}, "Favorite status fetched")
}
