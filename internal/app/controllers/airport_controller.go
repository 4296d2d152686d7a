package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/airlinehub/internal/app/services"
	"github.com/yigit/airlinehub/internal/middleware"
)

// AirportController serves airport reference data
type AirportController struct {
	airportService services.AirportService
}

// NewAirportController creates a new AirportController
func NewAirportController(airportService services.AirportService) *AirportController {
	return &AirportController{airportService: airportService}
}

// ListAirports returns all airports
// @Summary List airports
// @Tags airports
// @Produce json
// @Success 200 {array} models.Airport
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /airports [get]
func (c *AirportController) ListAirports(ctx *gin.Context) {
	airports, err := c.airportService.ListAirports(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, airports)
}
