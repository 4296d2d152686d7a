package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/yigit/airlinehub/internal/app/models"
	"github.com/yigit/airlinehub/internal/db"
	"github.com/yigit/airlinehub/internal/pkg/dberrors"
	"github.com/yigit/airlinehub/internal/pkg/logger"
)

// ErrAirportAlreadyExists is returned when an airport with the same code exists
var ErrAirportAlreadyExists = errors.New("airport with this code already exists")

// AirportRepository reads airport reference data
type AirportRepository struct {
	q  db.Querier
	sb squirrel.StatementBuilderType
}

// NewAirportRepository creates a new AirportRepository
func NewAirportRepository(database *db.Database) *AirportRepository {
	return &AirportRepository{
		q:  database.Conn,
		sb: database.Dialect.StatementBuilder(),
	}
}

// ListAirports retrieves all airports ordered by id
func (r *AirportRepository) ListAirports(ctx context.Context) ([]*models.Airport, error) {
	query, args, err := r.sb.Select("id", "code", "name", "city").
		From("airports").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list airports SQL")
		return nil, fmt.Errorf("failed to build list airports query: %w", err)
	}

	airports := []*models.Airport{}
	if err := sqlx.SelectContext(ctx, r.q, &airports, query, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing list airports query")
		return nil, fmt.Errorf("error querying airports: %w", err)
	}

	return airports, nil
}

// CountAirports returns the number of airports
func (r *AirportRepository) CountAirports(ctx context.Context) (int64, error) {
	query, args, err := r.sb.Select("COUNT(1)").From("airports").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count airports query: %w", err)
	}

	var count int64
	if err := sqlx.GetContext(ctx, r.q, &count, query, args...); err != nil {
		return 0, fmt.Errorf("error counting airports: %w", err)
	}
	return count, nil
}

// CreateAirport inserts an airport and returns its id
func (r *AirportRepository) CreateAirport(ctx context.Context, airport *models.Airport) (int64, error) {
	query, args, err := r.sb.Insert("airports").
		Columns("code", "name", "city").
		Values(airport.Code, airport.Name, airport.City).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create airport query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, r.q, &id, query, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrAirportAlreadyExists
		}
		logger.Error().Err(err).Str("code", airport.Code).Msg("Error executing create airport query")
		return 0, fmt.Errorf("error creating airport: %w", err)
	}

	return id, nil
}
