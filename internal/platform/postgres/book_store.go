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

// BookStore implements store.BookStore on PostgreSQL.
//
// The shelf association is a plain nullable column without a foreign key
// constraint; referential integrity against user_shelves is intentionally
// not enforced.
type BookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBookStore creates a PostgreSQL implementation of store.BookStore.
func NewBookStore(db store.DBTX, log *slog.Logger) *BookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &BookStore{
		db:     db,
		logger: log.With(slog.String("component", "book_store")),
	}
}

var _ store.BookStore = (*BookStore)(nil)

// Create implements store.BookStore.Create.
func (s *BookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID))
		return err
	}

	query := `
		INSERT INTO books (id, book_title, author, no_of_pages, shelf_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	`
	_, err := s.db.ExecContext(ctx, query,
		book.ID, book.BookTitle, book.Author, book.NoOfPages, book.ShelfID)
	if err != nil {
		log.Error("failed to create book",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID))
		return MapError(err)
	}

	log.Info("book created successfully",
		slog.String("book_id", book.ID),
		slog.String("title", book.BookTitle))
	return nil
}

// GetByID implements store.BookStore.GetByID.
func (s *BookStore) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, book_title, author, no_of_pages, COALESCE(shelf_id, '')
		FROM books
		WHERE id = $1
	`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.BookTitle,
		&book.Author,
		&book.NoOfPages,
		&book.ShelfID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found", slog.String("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book by ID",
			slog.String("error", err.Error()),
			slog.String("book_id", id))
		return nil, MapError(err)
	}

	return &book, nil
}

// GetByTitle implements store.BookStore.GetByTitle. Titles are not unique;
// the oldest matching row by ID is returned so repeated calls are stable.
func (s *BookStore) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, book_title, author, no_of_pages, COALESCE(shelf_id, '')
		FROM books
		WHERE book_title = $1
		ORDER BY id
		LIMIT 1
	`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, title).Scan(
		&book.ID,
		&book.BookTitle,
		&book.Author,
		&book.NoOfPages,
		&book.ShelfID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found by title", slog.String("title", title))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book by title",
			slog.String("error", err.Error()),
			slog.String("title", title))
		return nil, MapError(err)
	}

	return &book, nil
}

// List implements store.BookStore.List.
func (s *BookStore) List(ctx context.Context) ([]domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, book_title, author, no_of_pages, COALESCE(shelf_id, '')
		FROM books
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list books", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	books := []domain.Book{}
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(
			&book.ID,
			&book.BookTitle,
			&book.Author,
			&book.NoOfPages,
			&book.ShelfID,
		); err != nil {
			log.Error("failed to scan book row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return books, nil
}

// Update implements store.BookStore.Update. The shelf association is written
// as passed, so callers preserving it must copy it from the existing row.
func (s *BookStore) Update(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during update",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID))
		return err
	}

	query := `
		UPDATE books
		SET book_title = $1, author = $2, no_of_pages = $3, shelf_id = NULLIF($4, '')
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		book.BookTitle, book.Author, book.NoOfPages, book.ShelfID, book.ID)
	if err != nil {
		log.Error("failed to update book",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		log.Debug("book not found during update", slog.String("book_id", book.ID))
		return store.ErrBookNotFound
	}

	log.Info("book updated successfully", slog.String("book_id", book.ID))
	return nil
}

// Delete implements store.BookStore.Delete.
func (s *BookStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete book",
			slog.String("error", err.Error()),
			slog.String("book_id", id))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		log.Debug("book not found during delete", slog.String("book_id", id))
		return store.ErrBookNotFound
	}

	log.Info("book deleted successfully", slog.String("book_id", id))
	return nil
}

// WithTx implements store.BookStore.WithTx.
func (s *BookStore) WithTx(tx *sql.Tx) store.BookStore {
	return &BookStore{db: tx, logger: s.logger}
}
