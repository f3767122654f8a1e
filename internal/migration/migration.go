// Package migration applies and authors the SQL migrations in the
// migrations directory using golang-migrate.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultSchema is the Postgres schema used when none is configured
const DefaultSchema = "public"

// Options selects the migrations and where they are applied
type Options struct {
	Dir     string
	Schema  string
	Verbose bool
}

// Migrator runs migrations against one database
type Migrator struct {
	m      *migrate.Migrate
	logger *zap.Logger
}

// New creates a migrator over an open connection. The schema is created
// when missing and holds the schema_migrations table.
func New(db *sql.DB, opts Options, logger *zap.Logger) (*Migrator, error) {
	if opts.Schema == "" {
		opts.Schema = DefaultSchema
	}

	if opts.Schema != DefaultSchema {
		if _, err := db.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %q`, opts.Schema)); err != nil {
			return nil, fmt.Errorf("failed to create schema %s: %w", opts.Schema, err)
		}
	}

	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{SchemaName: opts.Schema})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations dir: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(dir), "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	m.Log = &zapLogger{logger: logger, verbose: opts.Verbose}

	return &Migrator{m: m, logger: logger}, nil
}

// Up applies every pending migration
func (mg *Migrator) Up() error {
	err := mg.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mg.logger.Info("No new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	mg.logger.Info("Migrations applied successfully")
	return nil
}

// Down rolls back the most recent migration
func (mg *Migrator) Down() error {
	err := mg.m.Steps(-1)
	if errors.Is(err, migrate.ErrNoChange) || errors.Is(err, migrate.ErrNilVersion) {
		mg.logger.Info("No migrations to roll back")
		return nil
	}
	var shortLimit migrate.ErrShortLimit
	if errors.As(err, &shortLimit) {
		mg.logger.Info("No migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	mg.logger.Info("Migration rolled back")
	return nil
}

// Version returns the applied version, 0 when nothing has been applied
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Close releases the migration source and database driver
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return multierr.Combine(srcErr, dbErr)
}
