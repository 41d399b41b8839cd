package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
	"github.com/raduapetrei/bookshelf-api/internal/service/auth"
	"github.com/raduapetrei/bookshelf-api/internal/store"
)

// passthroughTx replaces store.RunInTransaction in tests: it invokes fn with
// a nil transaction, which the stubs below ignore.
func passthroughTx(ctx context.Context, db *sql.DB, fn store.TxFn) error {
	return fn(ctx, nil)
}

// stubBookStore is an in-memory store.BookStore for service tests.
type stubBookStore struct {
	books map[string]domain.Book
}

func newStubBookStore() *stubBookStore {
	return &stubBookStore{books: make(map[string]domain.Book)}
}

func (s *stubBookStore) Create(ctx context.Context, book *domain.Book) error {
	s.books[book.ID] = *book
	return nil
}

func (s *stubBookStore) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	book, ok := s.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	return &book, nil
}

func (s *stubBookStore) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	var found *domain.Book
	for _, book := range s.books {
		if book.BookTitle != title {
			continue
		}
		if found == nil || book.ID < found.ID {
			b := book
			found = &b
		}
	}
	if found == nil {
		return nil, store.ErrBookNotFound
	}
	return found, nil
}

func (s *stubBookStore) List(ctx context.Context) ([]domain.Book, error) {
	out := []domain.Book{}
	for _, book := range s.books {
		out = append(out, book)
	}
	return out, nil
}

func (s *stubBookStore) Update(ctx context.Context, book *domain.Book) error {
	if _, ok := s.books[book.ID]; !ok {
		return store.ErrBookNotFound
	}
	s.books[book.ID] = *book
	return nil
}

func (s *stubBookStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.books[id]; !ok {
		return store.ErrBookNotFound
	}
	delete(s.books, id)
	return nil
}

func (s *stubBookStore) WithTx(tx *sql.Tx) store.BookStore { return s }

// stubShelfStore is an in-memory store.ShelfStore for service tests.
type stubShelfStore struct {
	shelves map[string]domain.UserShelf
}

func newStubShelfStore() *stubShelfStore {
	return &stubShelfStore{shelves: make(map[string]domain.UserShelf)}
}

func (s *stubShelfStore) Create(ctx context.Context, shelf *domain.UserShelf) error {
	s.shelves[shelf.ID] = *shelf
	return nil
}

func (s *stubShelfStore) GetByID(ctx context.Context, id string) (*domain.UserShelf, error) {
	shelf, ok := s.shelves[id]
	if !ok {
		return nil, store.ErrShelfNotFound
	}
	if shelf.Books == nil {
		shelf.Books = []domain.Book{}
	}
	return &shelf, nil
}

func (s *stubShelfStore) List(ctx context.Context) ([]domain.UserShelf, error) {
	out := []domain.UserShelf{}
	for _, shelf := range s.shelves {
		if shelf.Books == nil {
			shelf.Books = []domain.Book{}
		}
		out = append(out, shelf)
	}
	return out, nil
}

func (s *stubShelfStore) Update(ctx context.Context, shelf *domain.UserShelf) error {
	existing, ok := s.shelves[shelf.ID]
	if !ok {
		return store.ErrShelfNotFound
	}
	existing.ShelfName = shelf.ShelfName
	existing.Capacity = shelf.Capacity
	s.shelves[shelf.ID] = existing
	return nil
}

func (s *stubShelfStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.shelves[id]; !ok {
		return store.ErrShelfNotFound
	}
	delete(s.shelves, id)
	return nil
}

func (s *stubShelfStore) WithTx(tx *sql.Tx) store.ShelfStore { return s }

func (s *stubShelfStore) setBooks(shelfID string, books []domain.Book) {
	shelf, ok := s.shelves[shelfID]
	if !ok {
		return
	}
	shelf.Books = books
	s.shelves[shelfID] = shelf
}

// stubUserStore is an in-memory store.UserStore for service tests.
type stubUserStore struct {
	users  []*domain.User
	nextID int64

	createErr error
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{nextID: 1}
}

func (s *stubUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = s.nextID
	s.nextID++
	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

func (s *stubUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *stubUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

// stubJWTService issues a fixed token.
type stubJWTService struct {
	token string
	err   error

	lastUsername string
}

func (s *stubJWTService) GenerateToken(ctx context.Context, username string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.lastUsername = username
	return s.token, nil
}

func (s *stubJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return nil, errors.New("not implemented")
}

// stubHasher prefixes the plaintext so tests can assert the stored value.
type stubHasher struct {
	err error
}

func (s *stubHasher) Hash(password string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "hashed:" + password, nil
}

// stubVerifier succeeds when the hash is the stubHasher encoding of the password.
type stubVerifier struct{}

func (s *stubVerifier) Compare(hashedPassword, password string) error {
	if hashedPassword == "hashed:"+password {
		return nil
	}
	return errors.New("password mismatch")
}
