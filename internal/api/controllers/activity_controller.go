package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"escapade/internal/services"
	"escapade/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// ListActivities godoc
// @Summary List activities
// @Description List catalog activities, optionally filtered by country and city. When lat/lng are given, walking distances are attached.
// @Tags Activities
// @Produce json
// @Param country query string false "Country filter (accent-insensitive)"
// @Param city query string false "City filter"
// @Param lat query number false "Latitude of the user"
// @Param lng query number false "Longitude of the user"
// @Success 200 {object} utils.APIResponse
// @Router /activities [get]
func (a *ActivityController) ListActivities(c *gin.Context) {
	country := c.Query("country")
	city := c.Query("city")

	var lat, lng *float64
	if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" && lngStr != "" {
		latVal, latErr := strconv.ParseFloat(latStr, 64)
		lngVal, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid coordinates")
			return
		}
		lat, lng = &latVal, &lngVal
	}

	activities := a.activityService.ListActivities(country, city, lat, lng)
	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

// GetActivity godoc
// @Summary Get an activity
// @Tags Activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /activities/{id} [get]
func (a *ActivityController) GetActivity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	activity, err := a.activityService.GetActivityByID(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity fetched successfully")
}

// ListCountries godoc
// @Summary List countries with activities
// @Tags Locations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /locations/countries [get]
func (a *ActivityController) ListCountries(c *gin.Context) {
	utils.RespondSuccess(c, a.activityService.Countries(), "Countries fetched successfully")
}

// ListCities godoc
// @Summary List cities for a country
// @Tags Locations
// @Produce json
// @Param country path string true "Country name"
// @Success 200 {object} utils.APIResponse
// @Router /locations/countries/{country}/cities [get]
func (a *ActivityController) ListCities(c *gin.Context) {
	cities := a.activityService.CitiesForCountry(c.Param("country"))
	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}
