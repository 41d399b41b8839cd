package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
	"github.com/raduapetrei/bookshelf-api/internal/store"
)

// BookInput carries the mutable fields of a book for create and update
// operations.
type BookInput struct {
	BookTitle string
	Author    string
	NoOfPages int
	ShelfID   string
}

// BookService provides book management operations.
//
// Update and Delete look books up by title, not ID. The title-as-key contract
// is inherited from the public API and preserved for compatibility, even
// though titles are not guaranteed unique.
type BookService interface {
	// ListBooks returns all books.
	ListBooks(ctx context.Context) ([]domain.Book, error)

	// GetBook returns the book with the given ID. A malformed ID yields an
	// invalid-argument error distinct from not-found.
	GetBook(ctx context.Context, id string) (*domain.Book, error)

	// CreateBook validates the input, assigns a fresh ID and persists.
	CreateBook(ctx context.Context, input BookInput) (*domain.Book, error)

	// UpdateBook validates the input first, then overwrites the title,
	// author and page count of the book found by title. The book's ID and
	// shelf association are preserved.
	UpdateBook(ctx context.Context, title string, input BookInput) error

	// DeleteBook removes the book found by title.
	DeleteBook(ctx context.Context, title string) error
}

type bookService struct {
	db     *sql.DB
	books  store.BookStore
	logger *slog.Logger

	// runTx is store.RunInTransaction in production, replaceable in tests.
	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

var _ BookService = (*bookService)(nil)

// NewBookService creates a BookService with the given dependencies.
func NewBookService(db *sql.DB, books store.BookStore, log *slog.Logger) BookService {
	if log == nil {
		log = slog.Default()
	}
	return &bookService{
		db:     db,
		books:  books,
		logger: log.With(slog.String("component", "book_service")),
		runTx:  store.RunInTransaction,
	}
}

func (s *bookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.books.List(ctx)
}

func (s *bookService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	if err := domain.ValidateBookID(id); err != nil {
		return nil, err
	}

	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return book, nil
}

func (s *bookService) CreateBook(ctx context.Context, input BookInput) (*domain.Book, error) {
	book, err := domain.NewBook(input.BookTitle, input.Author, input.NoOfPages, input.ShelfID)
	if err != nil {
		return nil, err
	}

	if err := s.books.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}

func (s *bookService) UpdateBook(ctx context.Context, title string, input BookInput) error {
	// Validate the new values before touching storage
	candidate := domain.Book{
		BookTitle: input.BookTitle,
		Author:    input.Author,
		NoOfPages: input.NoOfPages,
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	return s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		books := s.books.WithTx(tx)

		book, err := books.GetByTitle(ctx, title)
		if err != nil {
			return err
		}

		book.BookTitle = input.BookTitle
		book.Author = input.Author
		book.NoOfPages = input.NoOfPages
		// ID and shelf association are preserved

		return books.Update(ctx, book)
	})
}

func (s *bookService) DeleteBook(ctx context.Context, title string) error {
	return s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		books := s.books.WithTx(tx)

		book, err := books.GetByTitle(ctx, title)
		if err != nil {
			return err
		}

		return books.Delete(ctx, book.ID)
	})
}
