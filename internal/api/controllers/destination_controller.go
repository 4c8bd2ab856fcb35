package controllers

import (
	"github.com/gin-gonic/gin"

	"escapade/internal/services"
	"escapade/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// ListDestinations godoc
// @Summary List travel destinations
// @Description Country sheets sorted by name
// @Tags Destinations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	utils.RespondSuccess(c, d.destinationService.ListDestinations(), "Destinations fetched successfully")
}

// GetDestination godoc
// @Summary Get a travel destination
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id} [get]
func (d *DestinationController) GetDestination(c *gin.Context) {
	destination, err := d.destinationService.GetDestination(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}
