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

// ShelfStore implements store.ShelfStore on PostgreSQL.
type ShelfStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewShelfStore creates a PostgreSQL implementation of store.ShelfStore.
func NewShelfStore(db store.DBTX, log *slog.Logger) *ShelfStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ShelfStore{
		db:     db,
		logger: log.With(slog.String("component", "shelf_store")),
	}
}

var _ store.ShelfStore = (*ShelfStore)(nil)

// Create implements store.ShelfStore.Create.
func (s *ShelfStore) Create(ctx context.Context, shelf *domain.UserShelf) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := shelf.Validate(); err != nil {
		log.Warn("shelf validation failed during create",
			slog.String("error", err.Error()),
			slog.String("shelf_id", shelf.ID))
		return err
	}

	query := `
		INSERT INTO user_shelves (id, shelf_name, capacity)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, shelf.ID, shelf.ShelfName, shelf.Capacity)
	if err != nil {
		log.Error("failed to create shelf",
			slog.String("error", err.Error()),
			slog.String("shelf_id", shelf.ID))
		return MapError(err)
	}

	log.Info("shelf created successfully",
		slog.String("shelf_id", shelf.ID),
		slog.String("name", shelf.ShelfName))
	return nil
}

// GetByID implements store.ShelfStore.GetByID. The returned shelf carries its
// book collection, empty when no books reference it.
func (s *ShelfStore) GetByID(ctx context.Context, id string) (*domain.UserShelf, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, shelf_name, capacity
		FROM user_shelves
		WHERE id = $1
	`

	var shelf domain.UserShelf
	err := s.db.QueryRowContext(ctx, query, id).Scan(&shelf.ID, &shelf.ShelfName, &shelf.Capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("shelf not found", slog.String("shelf_id", id))
			return nil, store.ErrShelfNotFound
		}
		log.Error("failed to get shelf by ID",
			slog.String("error", err.Error()),
			slog.String("shelf_id", id))
		return nil, MapError(err)
	}

	books, err := s.booksForShelf(ctx, id)
	if err != nil {
		return nil, err
	}
	shelf.Books = books

	return &shelf, nil
}

// List implements store.ShelfStore.List. Book collections are populated with
// a single additional query across all shelves.
func (s *ShelfStore) List(ctx context.Context) ([]domain.UserShelf, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, shelf_name, capacity FROM user_shelves`)
	if err != nil {
		log.Error("failed to list shelves", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	shelves := []domain.UserShelf{}
	for rows.Next() {
		var shelf domain.UserShelf
		if err := rows.Scan(&shelf.ID, &shelf.ShelfName, &shelf.Capacity); err != nil {
			log.Error("failed to scan shelf row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		shelf.Books = []domain.Book{}
		shelves = append(shelves, shelf)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if len(shelves) == 0 {
		return shelves, nil
	}

	bookRows, err := s.db.QueryContext(ctx, `
		SELECT id, book_title, author, no_of_pages, shelf_id
		FROM books
		WHERE shelf_id IS NOT NULL
	`)
	if err != nil {
		log.Error("failed to list shelf books", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := bookRows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	byShelf := make(map[string][]domain.Book)
	for bookRows.Next() {
		var book domain.Book
		if err := bookRows.Scan(
			&book.ID,
			&book.BookTitle,
			&book.Author,
			&book.NoOfPages,
			&book.ShelfID,
		); err != nil {
			log.Error("failed to scan book row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		byShelf[book.ShelfID] = append(byShelf[book.ShelfID], book)
	}
	if err := bookRows.Err(); err != nil {
		return nil, MapError(err)
	}

	for i := range shelves {
		if books, ok := byShelf[shelves[i].ID]; ok {
			shelves[i].Books = books
		}
	}

	return shelves, nil
}

// Update implements store.ShelfStore.Update. Only the name and capacity are
// written; book associations live on the books table and are untouched.
func (s *ShelfStore) Update(ctx context.Context, shelf *domain.UserShelf) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := shelf.Validate(); err != nil {
		log.Warn("shelf validation failed during update",
			slog.String("error", err.Error()),
			slog.String("shelf_id", shelf.ID))
		return err
	}

	query := `
		UPDATE user_shelves
		SET shelf_name = $1, capacity = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, shelf.ShelfName, shelf.Capacity, shelf.ID)
	if err != nil {
		log.Error("failed to update shelf",
			slog.String("error", err.Error()),
			slog.String("shelf_id", shelf.ID))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		log.Debug("shelf not found during update", slog.String("shelf_id", shelf.ID))
		return store.ErrShelfNotFound
	}

	log.Info("shelf updated successfully", slog.String("shelf_id", shelf.ID))
	return nil
}

// Delete implements store.ShelfStore.Delete. Books that referenced the shelf
// keep their dangling association; there is no cascade.
func (s *ShelfStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM user_shelves WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete shelf",
			slog.String("error", err.Error()),
			slog.String("shelf_id", id))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		log.Debug("shelf not found during delete", slog.String("shelf_id", id))
		return store.ErrShelfNotFound
	}

	log.Info("shelf deleted successfully", slog.String("shelf_id", id))
	return nil
}

// WithTx implements store.ShelfStore.WithTx.
func (s *ShelfStore) WithTx(tx *sql.Tx) store.ShelfStore {
	return &ShelfStore{db: tx, logger: s.logger}
}

func (s *ShelfStore) booksForShelf(ctx context.Context, shelfID string) ([]domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, book_title, author, no_of_pages, shelf_id
		FROM books
		WHERE shelf_id = $1
	`, shelfID)
	if err != nil {
		log.Error("failed to query shelf books",
			slog.String("error", err.Error()),
			slog.String("shelf_id", shelfID))
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
