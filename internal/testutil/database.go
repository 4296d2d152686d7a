// Package testutil opens throwaway databases for package tests
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yigit/airlinehub/internal/app/migrations"
	"github.com/yigit/airlinehub/internal/config"
	"github.com/yigit/airlinehub/internal/db"
)

var dbCounter atomic.Int64

// memoryName turns a test name into a unique in-memory database name
func memoryName(t testing.TB) string {
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	return fmt.Sprintf("%s_%d", name, dbCounter.Add(1))
}

// OpenSQLite opens an empty in-memory SQLite database that lives for the duration of the test
func OpenSQLite(t testing.TB) *db.Database {
	t.Helper()

	database, err := db.Open(context.Background(), db.Options{
		Driver: config.DriverSQLite,
		DSN:    "file:" + memoryName(t) + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	return database
}

// NewSQLite opens an in-memory SQLite database with every migration applied
func NewSQLite(t testing.TB) *db.Database {
	t.Helper()

	database := OpenSQLite(t)
	require.NoError(t, migrations.NewMigrator(database).Migrate(context.Background()))
	return database
}

// PostgresDSNEnv names the variable holding the DSN of a disposable Postgres database
const PostgresDSNEnv = "AIRLINEHUB_TEST_POSTGRES_DSN"

// NewPostgres connects to the Postgres database named by PostgresDSNEnv, applies
// every migration and empties the tables. The test is skipped when the variable is unset.
func NewPostgres(t testing.TB) *db.Database {
	t.Helper()

	dsn := os.Getenv(PostgresDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", PostgresDSNEnv)
	}

	database, err := db.Open(context.Background(), db.Options{
		Driver:       config.DriverPostgres,
		DSN:          dsn,
		MaxOpenConns: 8,
		MaxIdleConns: 8,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	ctx := context.Background()
	require.NoError(t, migrations.NewMigrator(database).Migrate(ctx))
	_, err = database.Conn.ExecContext(ctx, "TRUNCATE airline_airports, airlines, airports RESTART IDENTITY")
	require.NoError(t, err)
	return database
}

// InsertAirports inserts airports with the given codes and returns their ids in order
func InsertAirports(t testing.TB, database *db.Database, codes ...string) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(codes))
	for _, code := range codes {
		query, args, err := database.Dialect.StatementBuilder().
			Insert("airports").
			Columns("code", "name", "city").
			Values(code, code+" Airport", "").
			Suffix("RETURNING id").
			ToSql()
		require.NoError(t, err)

		var id int64
		require.NoError(t, database.Conn.GetContext(context.Background(), &id, query, args...))
		ids = append(ids, id)
	}
	return ids
}
