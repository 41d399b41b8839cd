package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Registers the pgx stdlib driver under the name "pgx".
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/raduapetrei/bookshelf-api/internal/config"
)

// setupDatabase establishes a database connection and configures the pool.
func setupDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established")
	return db, nil
}
