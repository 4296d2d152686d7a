package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/airlinehub/internal/app/controllers"
	"github.com/yigit/airlinehub/internal/app/models/dto"
	"github.com/yigit/airlinehub/internal/pkg/logger"
)

// Pinger reports whether the data store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetupRouter configures all API routes under /api
func SetupRouter(
	router *gin.Engine,
	airlineController *controllers.AirlineController,
	airportController *controllers.AirportController,
	store Pinger,
) {
	api := router.Group("/api")

	// Collection endpoint
	airlines := api.Group("/airlines")
	{
		airlines.GET("", airlineController.ListAirlines)
		airlines.POST("", airlineController.CreateAirline)

		// Item endpoint
		airlines.GET("/:id", airlineController.GetAirline)
		airlines.PATCH("/:id", airlineController.UpdateAirline)
		airlines.DELETE("/:id", airlineController.DeleteAirline)
	}

	api.GET("/airports", airportController.ListAirports)

	api.GET("/health", healthHandler(store))
}

// healthHandler answers 200 when the store answers a ping within two seconds
func healthHandler(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	}
}
