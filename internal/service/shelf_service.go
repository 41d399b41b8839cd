package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
	"github.com/raduapetrei/bookshelf-api/internal/store"
)

// ShelfInput carries the mutable fields of a shelf for create and update
// operations.
type ShelfInput struct {
	ShelfName string
	Capacity  int
}

// ShelfService provides shelf management operations.
//
// A shelf's declared capacity is never checked against its actual book count
// anywhere; it is declarative metadata only.
type ShelfService interface {
	// ListShelves returns all shelves with their book collections.
	ListShelves(ctx context.Context) ([]domain.UserShelf, error)

	// GetShelf returns the shelf with the given ID, books populated.
	GetShelf(ctx context.Context, id string) (*domain.UserShelf, error)

	// CreateShelf validates the input, assigns a fresh ID and persists.
	CreateShelf(ctx context.Context, input ShelfInput) (*domain.UserShelf, error)

	// UpdateShelf overwrites the shelf's name and capacity. Existence is
	// checked before the new values are validated. Book associations are
	// untouched.
	UpdateShelf(ctx context.Context, id string, input ShelfInput) (*domain.UserShelf, error)

	// DeleteShelf removes the shelf. Its books are left in place.
	DeleteShelf(ctx context.Context, id string) error

	// CountBooks returns the number of books on the shelf, zero when the
	// collection is empty.
	CountBooks(ctx context.Context, id string) (int, error)

	// GetShelfBooks returns the books on the shelf.
	GetShelfBooks(ctx context.Context, id string) ([]domain.Book, error)
}

type shelfService struct {
	db      *sql.DB
	shelves store.ShelfStore
	logger  *slog.Logger

	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

var _ ShelfService = (*shelfService)(nil)

// NewShelfService creates a ShelfService with the given dependencies.
func NewShelfService(db *sql.DB, shelves store.ShelfStore, log *slog.Logger) ShelfService {
	if log == nil {
		log = slog.Default()
	}
	return &shelfService{
		db:      db,
		shelves: shelves,
		logger:  log.With(slog.String("component", "shelf_service")),
		runTx:   store.RunInTransaction,
	}
}

func (s *shelfService) ListShelves(ctx context.Context) ([]domain.UserShelf, error) {
	return s.shelves.List(ctx)
}

func (s *shelfService) GetShelf(ctx context.Context, id string) (*domain.UserShelf, error) {
	return s.shelves.GetByID(ctx, id)
}

func (s *shelfService) CreateShelf(ctx context.Context, input ShelfInput) (*domain.UserShelf, error) {
	shelf, err := domain.NewUserShelf(input.ShelfName, input.Capacity)
	if err != nil {
		return nil, err
	}

	if err := s.shelves.Create(ctx, shelf); err != nil {
		return nil, fmt.Errorf("failed to create shelf: %w", err)
	}

	return shelf, nil
}

func (s *shelfService) UpdateShelf(
	ctx context.Context,
	id string,
	input ShelfInput,
) (*domain.UserShelf, error) {
	var updated *domain.UserShelf

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		shelves := s.shelves.WithTx(tx)

		// Existence first: an absent shelf is not-found even when the new
		// values are also invalid.
		shelf, err := shelves.GetByID(ctx, id)
		if err != nil {
			return err
		}

		shelf.ShelfName = input.ShelfName
		shelf.Capacity = input.Capacity
		if err := shelf.Validate(); err != nil {
			return err
		}

		if err := shelves.Update(ctx, shelf); err != nil {
			return err
		}

		updated = shelf
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *shelfService) DeleteShelf(ctx context.Context, id string) error {
	return s.shelves.Delete(ctx, id)
}

func (s *shelfService) CountBooks(ctx context.Context, id string) (int, error) {
	shelf, err := s.shelves.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	return shelf.BookCount(), nil
}

func (s *shelfService) GetShelfBooks(ctx context.Context, id string) ([]domain.Book, error) {
	shelf, err := s.shelves.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if shelf.Books == nil {
		return []domain.Book{}, nil
	}

	return shelf.Books, nil
}
