package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/airlinehub/internal/app/models"
	"github.com/yigit/airlinehub/internal/app/repositories"
	"github.com/yigit/airlinehub/internal/db"
	"github.com/yigit/airlinehub/internal/pkg/validation"
)

// DefaultAirports is the reference airport list inserted into an empty database
var DefaultAirports = []models.Airport{
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International", City: "Atlanta"},
	{Code: "JFK", Name: "John F. Kennedy International", City: "New York"},
	{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles"},
	{Code: "ORD", Name: "O'Hare International", City: "Chicago"},
	{Code: "DFW", Name: "Dallas/Fort Worth International", City: "Dallas"},
	{Code: "DEN", Name: "Denver International", City: "Denver"},
	{Code: "SFO", Name: "San Francisco International", City: "San Francisco"},
	{Code: "SEA", Name: "Seattle-Tacoma International", City: "Seattle"},
}

// CreateDefaultData inserts the default airports when the airports table is empty.
// Errors for individual airports are collected so one bad row does not stop the rest.
func CreateDefaultData(ctx context.Context, database *db.Database, lgr zerolog.Logger) error {
	airportRepo := repositories.NewAirportRepository(database)

	count, err := airportRepo.CountAirports(ctx)
	if err != nil {
		return fmt.Errorf("failed to count airports: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("airports", count).Msg("Airports already present, skipping seed")
		return nil
	}

	lgr.Info().Int("airports", len(DefaultAirports)).Msg("Creating default airports...")
	var finalErr error

	for i := range DefaultAirports {
		airport := DefaultAirports[i]
		if !validation.ValidAirportCode(airport.Code) {
			finalErr = errors.Join(finalErr, fmt.Errorf("invalid airport code %q", airport.Code))
			continue
		}
		if !validation.ValidAirportName(airport.Name) {
			finalErr = errors.Join(finalErr, fmt.Errorf("invalid airport name for %s", airport.Code))
			continue
		}
		id, err := airportRepo.CreateAirport(ctx, &airport)
		if err != nil {
			if errors.Is(err, repositories.ErrAirportAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("code", airport.Code).Msg("Error creating default airport")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Debug().Int64("id", id).Str("code", airport.Code).Msg("Default airport created")
	}

	return finalErr
}
