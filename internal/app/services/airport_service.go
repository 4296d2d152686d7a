package services

import (
	"context"
	"fmt"

	"github.com/yigit/airlinehub/internal/app/models"
	"github.com/yigit/airlinehub/internal/app/repositories"
)

// AirportService exposes airport reference data
type AirportService interface {
	ListAirports(ctx context.Context) ([]*models.Airport, error)
}

type airportServiceImpl struct {
	airportRepo *repositories.AirportRepository
}

// NewAirportService creates a new airport service instance
func NewAirportService(airportRepo *repositories.AirportRepository) AirportService {
	return &airportServiceImpl{airportRepo: airportRepo}
}

// ListAirports retrieves all airports
func (s *airportServiceImpl) ListAirports(ctx context.Context) ([]*models.Airport, error) {
	airports, err := s.airportRepo.ListAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving airports: %w", err)
	}
	return airports, nil
}
