package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
	"github.com/raduapetrei/bookshelf-api/internal/platform/logger"
	"github.com/raduapetrei/bookshelf-api/internal/store"
)

// UserStore implements store.UserStore on PostgreSQL.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a PostgreSQL implementation of store.UserStore.
// The connection (or transaction) is owned and managed by the caller.
func NewUserStore(db store.DBTX, log *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &UserStore{
		db:     db,
		logger: log.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create. The storage-assigned numeric ID
// is written back onto the user. There is deliberately no duplicate-username
// check: registering the same username twice inserts two rows.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return err
	}

	query := `
		INSERT INTO users (username, email, hashed_password)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, user.Username, user.Email, user.HashedPassword).
		Scan(&user.ID)
	if err != nil {
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return MapError(err)
	}

	log.Info("user created successfully",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))
	return nil
}

// GetByUsername implements store.UserStore.GetByUsername.
// Returns store.ErrUserNotFound if no user matches.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, email, hashed_password
		FROM users
		WHERE username = $1
		ORDER BY id
		LIMIT 1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("username", username))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, MapError(err)
	}

	return &user, nil
}

// WithTx implements store.UserStore.WithTx.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{db: tx, logger: s.logger}
}
