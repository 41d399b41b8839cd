package store

import (
	"context"
	"database/sql"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
)

// ShelfStore defines the interface for shelf data persistence.
type ShelfStore interface {
	// Create saves a new shelf.
	Create(ctx context.Context, shelf *domain.UserShelf) error

	// GetByID retrieves a shelf with its book collection populated.
	// Returns ErrShelfNotFound if the shelf does not exist.
	GetByID(ctx context.Context, id string) (*domain.UserShelf, error)

	// List returns all shelves with their book collections populated.
	// Order is storage-defined.
	List(ctx context.Context) ([]domain.UserShelf, error)

	// Update overwrites the shelf's name and capacity. Book associations are
	// untouched. Returns ErrShelfNotFound if the shelf does not exist.
	Update(ctx context.Context, shelf *domain.UserShelf) error

	// Delete removes a shelf by ID. Books referencing the shelf are left in
	// place; there is no cascade. Returns ErrShelfNotFound if absent.
	Delete(ctx context.Context, id string) error

	// WithTx returns a ShelfStore bound to the given transaction.
	WithTx(tx *sql.Tx) ShelfStore
}
