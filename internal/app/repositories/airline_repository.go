package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/yigit/airlinehub/internal/app/models"
	"github.com/yigit/airlinehub/internal/db"
	"github.com/yigit/airlinehub/internal/pkg/apperrors"
	"github.com/yigit/airlinehub/internal/pkg/dberrors"
	"github.com/yigit/airlinehub/internal/pkg/logger"
)

const (
	airlinesTable = "airlines"
	linksTable    = "airline_airports"

	// linkInsertBatchSize caps the rows per link INSERT so the bound
	// parameters stay under SQLite's and Postgres's variable limits.
	linkInsertBatchSize = 500
)

// AirlineRepository handles airline and airline-airport link database operations.
// A repository is bound either to the pool or, through WithTx, to one transaction.
type AirlineRepository struct {
	q          db.Querier
	sb         squirrel.StatementBuilderType
	lockSuffix string
}

// NewAirlineRepository creates a new AirlineRepository bound to the pool
func NewAirlineRepository(database *db.Database) *AirlineRepository {
	return &AirlineRepository{
		q:          database.Conn,
		sb:         database.Dialect.StatementBuilder(),
		lockSuffix: database.Dialect.LockSuffix,
	}
}

// WithTx returns a copy of the repository that runs every statement inside tx
func (r *AirlineRepository) WithTx(tx *sqlx.Tx) *AirlineRepository {
	return &AirlineRepository{
		q:          tx,
		sb:         r.sb,
		lockSuffix: r.lockSuffix,
	}
}

// wrapWriteError classifies a failed write
func wrapWriteError(err error, op string) error {
	if dberrors.IsForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w: %v", op, apperrors.ErrAirportReference, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ListAirlines retrieves every airline with its links, ordered by id
func (r *AirlineRepository) ListAirlines(ctx context.Context) ([]*models.Airline, error) {
	query, args, err := r.sb.Select("id", "name").
		From(airlinesTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list airlines SQL")
		return nil, fmt.Errorf("failed to build list airlines query: %w", err)
	}

	airlines := []*models.Airline{}
	if err := sqlx.SelectContext(ctx, r.q, &airlines, query, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing list airlines query")
		return nil, fmt.Errorf("error querying airlines: %w", err)
	}

	if len(airlines) == 0 {
		return airlines, nil
	}

	links, err := r.listLinks(ctx, nil)
	if err != nil {
		return nil, err
	}

	byAirline := make(map[int64][]models.AirlineAirport, len(airlines))
	for _, link := range links {
		byAirline[link.AirlineID] = append(byAirline[link.AirlineID], link)
	}
	for _, airline := range airlines {
		airline.AirlineAirport = byAirline[airline.ID]
		if airline.AirlineAirport == nil {
			airline.AirlineAirport = []models.AirlineAirport{}
		}
	}

	return airlines, nil
}

// GetAirlineByID retrieves an airline with its links
func (r *AirlineRepository) GetAirlineByID(ctx context.Context, id int64) (*models.Airline, error) {
	query, args, err := r.sb.Select("id", "name").
		From(airlinesTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get airline by ID SQL")
		return nil, fmt.Errorf("failed to build get airline query: %w", err)
	}

	airline := &models.Airline{}
	if err := sqlx.GetContext(ctx, r.q, airline, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("airlineID", id).Msg("Error scanning airline row")
		return nil, fmt.Errorf("error getting airline by ID: %w", err)
	}

	links, err := r.ListLinks(ctx, id)
	if err != nil {
		return nil, err
	}
	airline.AirlineAirport = links

	return airline, nil
}

// LockAirline locks the airline row for the rest of the transaction.
// It returns ErrNotFound when the airline does not exist.
func (r *AirlineRepository) LockAirline(ctx context.Context, id int64) error {
	builder := r.sb.Select("id").
		From(airlinesTable).
		Where(squirrel.Eq{"id": id})
	if r.lockSuffix != "" {
		builder = builder.Suffix(r.lockSuffix)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build lock airline query: %w", err)
	}

	var lockedID int64
	if err := sqlx.GetContext(ctx, r.q, &lockedID, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		logger.Error().Err(err).Int64("airlineID", id).Msg("Error locking airline row")
		return fmt.Errorf("error locking airline: %w", err)
	}

	return nil
}

// CreateAirline inserts an airline row and returns its id
func (r *AirlineRepository) CreateAirline(ctx context.Context, name string) (int64, error) {
	query, args, err := r.sb.Insert(airlinesTable).
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create airline SQL")
		return 0, fmt.Errorf("failed to build create airline query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, r.q, &id, query, args...); err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Error executing create airline query")
		return 0, wrapWriteError(err, "error creating airline")
	}

	return id, nil
}

// UpdateAirlineName renames an airline
func (r *AirlineRepository) UpdateAirlineName(ctx context.Context, id int64, name string) error {
	query, args, err := r.sb.Update(airlinesTable).
		Set("name", name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update airline SQL")
		return fmt.Errorf("failed to build update airline query: %w", err)
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("airlineID", id).Msg("Error executing update airline query")
		return wrapWriteError(err, "error updating airline")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteAirline deletes an airline row. Deleting a missing airline is not an error.
// Links must be removed first.
func (r *AirlineRepository) DeleteAirline(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete(airlinesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete airline SQL")
		return fmt.Errorf("failed to build delete airline query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		logger.Error().Err(err).Int64("airlineID", id).Msg("Error executing delete airline query")
		return wrapWriteError(err, "error deleting airline")
	}

	return nil
}

// ListLinks retrieves the links of one airline ordered by id
func (r *AirlineRepository) ListLinks(ctx context.Context, airlineID int64) ([]models.AirlineAirport, error) {
	return r.listLinks(ctx, squirrel.Eq{"airline_id": airlineID})
}

// listLinks reads link rows ordered by id. A nil filter reads the whole table.
func (r *AirlineRepository) listLinks(ctx context.Context, filter squirrel.Sqlizer) ([]models.AirlineAirport, error) {
	builder := r.sb.Select("id", "airline_id", "airport_id").From(linksTable)
	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.OrderBy("id ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list links SQL")
		return nil, fmt.Errorf("failed to build list links query: %w", err)
	}

	links := []models.AirlineAirport{}
	if err := sqlx.SelectContext(ctx, r.q, &links, query, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing list links query")
		return nil, fmt.Errorf("error querying airline airports: %w", err)
	}

	return links, nil
}

// CreateLinks inserts one link per airport id, in input order.
// Large lists are split into several multi-row statements, so callers
// that need all-or-nothing run it inside a transaction.
func (r *AirlineRepository) CreateLinks(ctx context.Context, airlineID int64, airportIDs []int64) error {
	for start := 0; start < len(airportIDs); start += linkInsertBatchSize {
		end := min(start+linkInsertBatchSize, len(airportIDs))
		if err := r.insertLinks(ctx, airlineID, airportIDs[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *AirlineRepository) insertLinks(ctx context.Context, airlineID int64, airportIDs []int64) error {
	builder := r.sb.Insert(linksTable).Columns("airline_id", "airport_id")
	for _, airportID := range airportIDs {
		builder = builder.Values(airlineID, airportID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create links SQL")
		return fmt.Errorf("failed to build create links query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		logger.Error().Err(err).Int64("airlineID", airlineID).Int("count", len(airportIDs)).Msg("Error executing create links query")
		return wrapWriteError(err, "error creating airline airports")
	}

	return nil
}

// DeleteLink deletes one link row by id
func (r *AirlineRepository) DeleteLink(ctx context.Context, linkID int64) error {
	query, args, err := r.sb.Delete(linksTable).
		Where(squirrel.Eq{"id": linkID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete link query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		logger.Error().Err(err).Int64("linkID", linkID).Msg("Error executing delete link query")
		return fmt.Errorf("error deleting airline airport: %w", err)
	}

	return nil
}

// DeleteLinksByAirline deletes every link of an airline and returns how many were removed
func (r *AirlineRepository) DeleteLinksByAirline(ctx context.Context, airlineID int64) (int64, error) {
	query, args, err := r.sb.Delete(linksTable).
		Where(squirrel.Eq{"airline_id": airlineID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete links query: %w", err)
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("airlineID", airlineID).Msg("Error executing delete links query")
		return 0, fmt.Errorf("error deleting airline airports: %w", err)
	}

	return result.RowsAffected()
}

// CountOrphanLinks counts links whose airline no longer exists
func (r *AirlineRepository) CountOrphanLinks(ctx context.Context) (int64, error) {
	query, args, err := r.sb.Select("COUNT(1)").
		From(linksTable + " l").
		LeftJoin(airlinesTable + " a ON a.id = l.airline_id").
		Where(squirrel.Eq{"a.id": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build orphan links query: %w", err)
	}

	var count int64
	if err := sqlx.GetContext(ctx, r.q, &count, query, args...); err != nil {
		return 0, fmt.Errorf("error counting orphan links: %w", err)
	}
	return count, nil
}
