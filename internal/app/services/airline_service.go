package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/yigit/airlinehub/internal/app/models"
	"github.com/yigit/airlinehub/internal/app/repositories"
	"github.com/yigit/airlinehub/internal/db"
	"github.com/yigit/airlinehub/internal/pkg/apperrors"
	"github.com/yigit/airlinehub/internal/pkg/metrics"
)

// AirlineService defines the interface for airline-related operations
type AirlineService interface {
	ListAirlines(ctx context.Context) ([]*models.Airline, error)
	GetAirline(ctx context.Context, id int64) (*models.Airline, error)
	CreateAirline(ctx context.Context, name string, airportIDs []int64) (*models.Airline, error)
	UpdateAirline(ctx context.Context, id int64, name string, airportIDs []int64) (*models.Airline, error)
	DeleteAirline(ctx context.Context, id int64) error
}

// TxRunner runs a function inside one database transaction
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// airlineServiceImpl implements the AirlineService interface.
// Every multi-step write runs in one transaction that first locks the airline row,
// so concurrent update and delete on the same id serialize.
type airlineServiceImpl struct {
	tx          TxRunner
	airlineRepo *repositories.AirlineRepository
	metrics     *metrics.Metrics
}

// NewAirlineService creates a new airline service instance
func NewAirlineService(tx TxRunner, airlineRepo *repositories.AirlineRepository, m *metrics.Metrics) AirlineService {
	return &airlineServiceImpl{
		tx:          tx,
		airlineRepo: airlineRepo,
		metrics:     m,
	}
}

// validateName trims an airline name and rejects a blank one.
// Length is bounded by request binding.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationError("name cannot be empty")
	}
	return name, nil
}

// storeError records a failed operation and wraps it
func (s *airlineServiceImpl) storeError(op string, err error) error {
	s.metrics.ObserveStoreError(op)
	return fmt.Errorf("error %s airline: %w", op, err)
}

// ListAirlines retrieves all airlines with their links
func (s *airlineServiceImpl) ListAirlines(ctx context.Context) ([]*models.Airline, error) {
	airlines, err := s.airlineRepo.ListAirlines(ctx)
	if err != nil {
		s.metrics.ObserveStoreError("listing")
		return nil, fmt.Errorf("error retrieving airlines: %w", err)
	}
	return airlines, nil
}

// GetAirline retrieves an airline by ID
func (s *airlineServiceImpl) GetAirline(ctx context.Context, id int64) (*models.Airline, error) {
	if id <= 0 {
		return nil, apperrors.ErrAirlineNotFound
	}

	airline, err := s.airlineRepo.GetAirlineByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrAirlineNotFound
		}
		return nil, s.storeError("retrieving", err)
	}
	return airline, nil
}

// CreateAirline creates an airline and one link per airport id as one unit
func (s *airlineServiceImpl) CreateAirline(ctx context.Context, name string, airportIDs []int64) (*models.Airline, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	var created *models.Airline
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		repo := s.airlineRepo.WithTx(tx)

		id, err := repo.CreateAirline(ctx, name)
		if err != nil {
			return err
		}
		if err := repo.CreateLinks(ctx, id, airportIDs); err != nil {
			return err
		}

		created, err = repo.GetAirlineByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.storeError("creating", err)
	}

	return created, nil
}

// UpdateAirline renames an airline and replaces all of its links.
// The old links are only gone once the new ones are in place.
func (s *airlineServiceImpl) UpdateAirline(ctx context.Context, id int64, name string, airportIDs []int64) (*models.Airline, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperrors.ErrAirlineNotFound
	}

	var updated *models.Airline
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		repo := s.airlineRepo.WithTx(tx)

		if err := repo.LockAirline(ctx, id); err != nil {
			return err
		}
		if err := repo.UpdateAirlineName(ctx, id, name); err != nil {
			return err
		}
		if _, err := repo.DeleteLinksByAirline(ctx, id); err != nil {
			return err
		}
		if err := repo.CreateLinks(ctx, id, airportIDs); err != nil {
			return err
		}

		var err error
		updated, err = repo.GetAirlineByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrAirlineNotFound
		}
		return nil, s.storeError("updating", err)
	}

	return updated, nil
}

// DeleteAirline deletes the airline's links one at a time, then the airline.
// Deleting an airline that does not exist succeeds.
func (s *airlineServiceImpl) DeleteAirline(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		repo := s.airlineRepo.WithTx(tx)

		if err := repo.LockAirline(ctx, id); err != nil {
			return err
		}

		links, err := repo.ListLinks(ctx, id)
		if err != nil {
			return err
		}
		for _, link := range links {
			if err := repo.DeleteLink(ctx, link.ID); err != nil {
				return err
			}
		}

		return repo.DeleteAirline(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return s.storeError("deleting", err)
	}

	return nil
}
