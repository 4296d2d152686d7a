package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/yigit/airlinehub/internal/config"
	"github.com/yigit/airlinehub/internal/pkg/helpers"
	"github.com/yigit/airlinehub/internal/pkg/logger"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Querier is satisfied by both *sqlx.DB and *sqlx.Tx
type Querier interface {
	sqlx.ExtContext
}

// Dialect captures the SQL differences between the supported backends
type Dialect struct {
	Name        string
	Placeholder squirrel.PlaceholderFormat
	// LockSuffix is appended to a SELECT to take a row lock, empty when the backend
	// serializes writers on its own.
	LockSuffix string
}

// StatementBuilder returns a squirrel builder using the dialect's placeholders
func (d Dialect) StatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.Placeholder)
}

// DialectFor returns the dialect of a configured driver
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return Dialect{Name: config.DriverPostgres, Placeholder: squirrel.Dollar, LockSuffix: "FOR UPDATE"}, nil
	case config.DriverSQLite:
		return Dialect{Name: config.DriverSQLite, Placeholder: squirrel.Question}, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Options holds connection settings
type Options struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// OptionsFromConfig converts the application config into connection options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: helpers.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour),
	}
}

// Database wraps the connection pool together with its dialect
type Database struct {
	Conn    *sqlx.DB
	Dialect Dialect
}

// NewDatabase opens the database described by the application config
func NewDatabase(cfg *config.Config) (*Database, error) {
	return Open(context.Background(), OptionsFromConfig(cfg))
}

// Open creates a connection pool and verifies it with a ping
func Open(ctx context.Context, opts Options) (*Database, error) {
	dialect, err := DialectFor(opts.Driver)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	driverName := opts.Driver
	if opts.Driver == config.DriverPostgres {
		driverName = "pgx"
	}

	conn, err := sqlx.Open(driverName, opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect.Name == config.DriverSQLite {
		// One connection keeps in-memory databases and per-connection pragmas consistent.
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
	} else {
		conn.SetMaxOpenConns(opts.MaxOpenConns)
		conn.SetMaxIdleConns(opts.MaxIdleConns)
		conn.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	if dialect.Name == config.DriverSQLite {
		if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}
	}

	return &Database{Conn: conn, Dialect: dialect}, nil
}

// Ping checks that the database is reachable
func (db *Database) Ping(ctx context.Context) error {
	return db.Conn.PingContext(ctx)
}

// Close closes the connection pool
func (db *Database) Close() error {
	if db.Conn != nil {
		return db.Conn.Close()
	}
	return nil
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sqlx.Tx) error

// WithTransaction runs a function within a transaction
func (db *Database) WithTransaction(ctx context.Context, fn TransactionFn) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := db.Conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
