package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/airlinehub/internal/config"
	"github.com/yigit/airlinehub/internal/db"
	"github.com/yigit/airlinehub/internal/testutil"
)

func TestDialectFor(t *testing.T) {
	pg, err := db.DialectFor(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "FOR UPDATE", pg.LockSuffix)

	query, _, err := pg.StatementBuilder().Select("id").From("airlines").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM airlines WHERE id = $1", query)

	lite, err := db.DialectFor(config.DriverSQLite)
	require.NoError(t, err)
	assert.Empty(t, lite.LockSuffix)

	query, _, err = lite.StatementBuilder().Select("id").From("airlines").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM airlines WHERE id = ?", query)

	_, err = db.DialectFor("oracle")
	assert.Error(t, err)
}

func TestOpen_SQLiteEnforcesForeignKeys(t *testing.T) {
	database := testutil.OpenSQLite(t)
	ctx := context.Background()

	require.NoError(t, database.Ping(ctx))

	var enabled int
	require.NoError(t, database.Conn.GetContext(ctx, &enabled, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, enabled)
}

func TestWithTransaction(t *testing.T) {
	database := testutil.OpenSQLite(t)
	ctx := context.Background()
	_, err := database.Conn.ExecContext(ctx, "CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)")
	require.NoError(t, err)

	count := func() int {
		var n int
		require.NoError(t, database.Conn.GetContext(ctx, &n, "SELECT COUNT(1) FROM items"))
		return n
	}

	require.NoError(t, database.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES ('kept')")
		return err
	}))
	assert.Equal(t, 1, count())

	boom := errors.New("boom")
	err = database.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES ('dropped')"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, count())

	assert.Panics(t, func() {
		_ = database.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
			_, _ = tx.ExecContext(ctx, "INSERT INTO items (name) VALUES ('panicked')")
			panic("boom")
		})
	})
	assert.Equal(t, 1, count())
}

func TestOptionsFromConfig(t *testing.T) {
	cfg, err := config.LoadConfig("does-not-exist.yaml")
	require.NoError(t, err)
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.ConnMaxLifetime = "30m"

	opts := db.OptionsFromConfig(cfg)
	assert.Equal(t, config.DriverSQLite, opts.Driver)
	assert.Equal(t, cfg.GetSQLiteDSN(), opts.DSN)
	assert.Equal(t, "30m0s", opts.ConnMaxLifetime.String())
}
