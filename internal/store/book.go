package store

import (
	"context"
	"database/sql"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
)

// BookStore defines the interface for book data persistence.
type BookStore interface {
	// Create saves a new book.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book by its primary key.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id string) (*domain.Book, error)

	// GetByTitle retrieves a book by its title. Titles are not guaranteed
	// unique; when several books share one, the oldest by ID wins.
	// Returns ErrBookNotFound if no book matches.
	GetByTitle(ctx context.Context, title string) (*domain.Book, error)

	// List returns all books. Order is storage-defined.
	List(ctx context.Context) ([]domain.Book, error)

	// Update overwrites the book identified by book.ID with the given title,
	// author and page count. The shelf association is preserved as passed.
	// Returns ErrBookNotFound if the book does not exist.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book by ID. Returns ErrBookNotFound if absent.
	Delete(ctx context.Context, id string) error

	// WithTx returns a BookStore bound to the given transaction.
	WithTx(tx *sql.Tx) BookStore
}
