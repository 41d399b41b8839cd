package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/raduapetrei/bookshelf-api/internal/config"
	"github.com/raduapetrei/bookshelf-api/internal/platform/logger"
	"github.com/raduapetrei/bookshelf-api/internal/platform/postgres"
	"github.com/raduapetrei/bookshelf-api/internal/service"
	"github.com/raduapetrei/bookshelf-api/internal/service/auth"
	"github.com/raduapetrei/bookshelf-api/internal/store"
)

// application holds the shared application dependencies to simplify wiring
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore  store.UserStore
	shelfStore store.ShelfStore
	bookStore  store.BookStore

	jwtService   auth.JWTService
	userService  service.UserService
	shelfService service.ShelfService
	bookService  service.BookService
}

// newApplication builds the full dependency graph: logger, database (with
// migrations applied), stores and services.
func newApplication(cfg *config.Config) (*application, error) {
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			appLogger.Error("failed to close database after migration failure", "error", closeErr)
		}
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewUserStore(db, appLogger)
	shelfStore := postgres.NewShelfStore(db, appLogger)
	bookStore := postgres.NewBookStore(db, appLogger)

	app := &application{
		config:     cfg,
		logger:     appLogger,
		db:         db,
		userStore:  userStore,
		shelfStore: shelfStore,
		bookStore:  bookStore,
		jwtService: jwtService,
		userService: service.NewUserService(
			userStore,
			jwtService,
			auth.NewBcryptHasher(),
			auth.NewBcryptVerifier(),
			appLogger,
		),
		shelfService: service.NewShelfService(db, shelfStore, appLogger),
		bookService:  service.NewBookService(db, bookStore, appLogger),
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
