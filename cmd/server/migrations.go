package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/raduapetrei/bookshelf-api/internal/platform/postgres"
)

// runMigrations applies all pending schema migrations from the embedded
// migration files.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(postgres.MigrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, postgres.MigrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("Database migrations applied", "version", version)
	return nil
}
