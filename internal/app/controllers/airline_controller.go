// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/airlinehub/internal/app/models/dto"
	"github.com/yigit/airlinehub/internal/app/services"
	"github.com/yigit/airlinehub/internal/middleware"
	"github.com/yigit/airlinehub/internal/pkg/apperrors"
)

// AirlineController handles the airline collection and item endpoints
type AirlineController struct {
	airlineService services.AirlineService
}

// NewAirlineController creates a new AirlineController
func NewAirlineController(airlineService services.AirlineService) *AirlineController {
	return &AirlineController{
		airlineService: airlineService,
	}
}

// parseAirlineID reads the :id path parameter
func parseAirlineID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidAirlineID)
		return 0, false
	}
	return id, true
}

// ListAirlines returns every airline with its airport links
// @Summary List airlines
// @Description Returns all airlines with their airport links. No filtering or pagination.
// @Tags airlines
// @Produce json
// @Success 200 {array} models.Airline
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /airlines [get]
func (c *AirlineController) ListAirlines(ctx *gin.Context) {
	airlines, err := c.airlineService.ListAirlines(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, airlines)
}

// CreateAirline creates an airline and its airport links
// @Summary Create an airline
// @Description Creates an airline with one link per airport id
// @Tags airlines
// @Accept json
// @Produce json
// @Param request body dto.CreateAirlineRequest true "Airline name and airport ids"
// @Success 201 {object} models.Airline
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /airlines [post]
func (c *AirlineController) CreateAirline(ctx *gin.Context) {
	var req dto.CreateAirlineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	airline, err := c.airlineService.CreateAirline(ctx.Request.Context(), req.Name, req.AirportIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, airline)
}

// GetAirline retrieves an airline by ID
// @Summary Get an airline
// @Tags airlines
// @Produce json
// @Param id path int true "Airline ID" Format(int64)
// @Success 200 {object} models.Airline
// @Failure 400 {object} dto.ErrorResponse "Invalid airline ID"
// @Failure 404 {object} dto.ErrorResponse "Airline not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /airlines/{id} [get]
func (c *AirlineController) GetAirline(ctx *gin.Context) {
	id, ok := parseAirlineID(ctx)
	if !ok {
		return
	}

	airline, err := c.airlineService.GetAirline(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, airline)
}

// UpdateAirline renames an airline and replaces its airport links
// @Summary Update an airline
// @Description Replaces the name and the full set of airport links in one transaction
// @Tags airlines
// @Accept json
// @Produce json
// @Param id path int true "Airline ID" Format(int64)
// @Param request body dto.UpdateAirlineRequest true "New name and airport ids"
// @Success 200 {object} models.Airline
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Airline not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /airlines/{id} [patch]
func (c *AirlineController) UpdateAirline(ctx *gin.Context) {
	id, ok := parseAirlineID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAirlineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	airline, err := c.airlineService.UpdateAirline(ctx.Request.Context(), id, req.Name, req.AirportIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, airline)
}

// DeleteAirline deletes an airline and its airport links
// @Summary Delete an airline
// @Tags airlines
// @Param id path int true "Airline ID" Format(int64)
// @Success 204 "Airline deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid airline ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /airlines/{id} [delete]
func (c *AirlineController) DeleteAirline(ctx *gin.Context) {
	id, ok := parseAirlineID(ctx)
	if !ok {
		return
	}

	if err := c.airlineService.DeleteAirline(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
