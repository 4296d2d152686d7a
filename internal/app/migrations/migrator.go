package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yigit/airlinehub/internal/db"
	"github.com/yigit/airlinehub/internal/pkg/logger"
)

//go:embed sql
var embedded embed.FS

// Migrator manages database migrations
type Migrator struct {
	db    *db.Database
	files fs.FS
	dir   string
}

// NewMigrator creates a migrator reading the embedded migrations of the database's dialect
func NewMigrator(database *db.Database) *Migrator {
	return &Migrator{
		db:    database,
		files: embedded,
		dir:   path.Join("sql", database.Dialect.Name),
	}
}

// NewMigratorFS creates a migrator reading migrations from dir inside files
func NewMigratorFS(database *db.Database, files fs.FS, dir string) *Migrator {
	return &Migrator{db: database, files: files, dir: dir}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Conn.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	query, args, err := m.db.Dialect.StatementBuilder().
		Select("COUNT(1)").
		From("schema_migrations").
		Where("version = ?", version).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build migration status query: %w", err)
	}

	var count int
	if err := m.db.Conn.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return count > 0, nil
}

// recordMigration marks a migration as applied inside the migration's transaction
func (m *Migrator) recordMigration(ctx context.Context, tx *sqlx.Tx, version string) error {
	query, args, err := m.db.Dialect.StatementBuilder().
		Insert("schema_migrations").
		Columns("version", "applied_at").
		Values(version, time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build record migration query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// versionOf extracts the version prefix from a file name ("001_init.sql" => "001")
func versionOf(filename string) string {
	return strings.Split(filename, "_")[0]
}

// MigrateFile applies a single migration file unless it was already applied
func (m *Migrator) MigrateFile(ctx context.Context, filePath string) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	filename := path.Base(filePath)
	version := versionOf(filename)

	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		logger.Debug().Str("migration", filename).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(m.files, filePath)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	err = m.db.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("error occurred during SQL migration %s: %w", filename, err)
		}
		return m.recordMigration(ctx, tx, version)
	})
	if err != nil {
		return err
	}

	logger.Info().Str("migration", filename).Msg("Migration file successfully applied")
	return nil
}

// Migrate applies all pending migrations in lexical order
func (m *Migrator) Migrate(ctx context.Context) error {
	entries, err := fs.ReadDir(m.files, m.dir)
	if err != nil {
		return fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	for _, file := range sqlFiles {
		if err := m.MigrateFile(ctx, path.Join(m.dir, file)); err != nil {
			return err
		}
	}

	return nil
}
