package store

import (
	"context"
	"database/sql"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user and assigns its storage-generated numeric ID.
	// The user's HashedPassword must already be set; the plaintext password
	// is never persisted. No duplicate-username check is performed.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if no user matches.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// WithTx returns a UserStore bound to the given transaction.
	WithTx(tx *sql.Tx) UserStore
}
