// Package mocks provides hand-written test doubles for the store and service
// interfaces.
package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
	"github.com/raduapetrei/bookshelf-api/internal/store"
)

// MockUserStore is an in-memory implementation of store.UserStore.
type MockUserStore struct {
	mu     sync.Mutex
	users  []*domain.User
	nextID int64

	// CreateErr, when set, is returned by Create instead of inserting.
	CreateErr error
	// GetErr, when set, is returned by GetByUsername.
	GetErr error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates an empty MockUserStore.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{nextID: 1}
}

// Create implements store.UserStore.Create. Duplicate usernames are allowed,
// matching the real store.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = m.nextID
	m.nextID++

	stored := *user
	m.users = append(m.users, &stored)
	return nil
}

// GetByUsername implements store.UserStore.GetByUsername.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// WithTx implements store.UserStore.WithTx; the mock ignores transactions.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore { return m }

// Count returns the number of stored users.
func (m *MockUserStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// MockBookStore is an in-memory implementation of store.BookStore.
type MockBookStore struct {
	mu    sync.Mutex
	books map[string]domain.Book

	CreateErr error
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

var _ store.BookStore = (*MockBookStore)(nil)

// NewMockBookStore creates an empty MockBookStore.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{books: make(map[string]domain.Book)}
}

// Create implements store.BookStore.Create.
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.books[book.ID] = *book
	return nil
}

// GetByID implements store.BookStore.GetByID.
func (m *MockBookStore) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	return &book, nil
}

// GetByTitle implements store.BookStore.GetByTitle. When several books share
// the title, the one with the smallest ID wins, matching the real store.
func (m *MockBookStore) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var found *domain.Book
	for _, book := range m.books {
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

// List implements store.BookStore.List.
func (m *MockBookStore) List(ctx context.Context) ([]domain.Book, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := []domain.Book{}
	for _, book := range m.books {
		out = append(out, book)
	}
	return out, nil
}

// Update implements store.BookStore.Update.
func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.books[book.ID]; !ok {
		return store.ErrBookNotFound
	}
	m.books[book.ID] = *book
	return nil
}

// Delete implements store.BookStore.Delete.
func (m *MockBookStore) Delete(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.books[id]; !ok {
		return store.ErrBookNotFound
	}
	delete(m.books, id)
	return nil
}

// WithTx implements store.BookStore.WithTx; the mock ignores transactions.
func (m *MockBookStore) WithTx(tx *sql.Tx) store.BookStore { return m }

// MockShelfStore is an in-memory implementation of store.ShelfStore.
type MockShelfStore struct {
	mu      sync.Mutex
	shelves map[string]domain.UserShelf

	CreateErr error
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

var _ store.ShelfStore = (*MockShelfStore)(nil)

// NewMockShelfStore creates an empty MockShelfStore.
func NewMockShelfStore() *MockShelfStore {
	return &MockShelfStore{shelves: make(map[string]domain.UserShelf)}
}

// Create implements store.ShelfStore.Create.
func (m *MockShelfStore) Create(ctx context.Context, shelf *domain.UserShelf) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.shelves[shelf.ID] = *shelf
	return nil
}

// GetByID implements store.ShelfStore.GetByID.
func (m *MockShelfStore) GetByID(ctx context.Context, id string) (*domain.UserShelf, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	shelf, ok := m.shelves[id]
	if !ok {
		return nil, store.ErrShelfNotFound
	}
	if shelf.Books == nil {
		shelf.Books = []domain.Book{}
	}
	return &shelf, nil
}

// List implements store.ShelfStore.List.
func (m *MockShelfStore) List(ctx context.Context) ([]domain.UserShelf, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := []domain.UserShelf{}
	for _, shelf := range m.shelves {
		if shelf.Books == nil {
			shelf.Books = []domain.Book{}
		}
		out = append(out, shelf)
	}
	return out, nil
}

// Update implements store.ShelfStore.Update.
func (m *MockShelfStore) Update(ctx context.Context, shelf *domain.UserShelf) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.shelves[shelf.ID]
	if !ok {
		return store.ErrShelfNotFound
	}
	existing.ShelfName = shelf.ShelfName
	existing.Capacity = shelf.Capacity
	m.shelves[shelf.ID] = existing
	return nil
}

// Delete implements store.ShelfStore.Delete.
func (m *MockShelfStore) Delete(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.shelves[id]; !ok {
		return store.ErrShelfNotFound
	}
	delete(m.shelves, id)
	return nil
}

// WithTx implements store.ShelfStore.WithTx; the mock ignores transactions.
func (m *MockShelfStore) WithTx(tx *sql.Tx) store.ShelfStore { return m }

// SetBooks replaces the book collection of a stored shelf.
func (m *MockShelfStore) SetBooks(shelfID string, books []domain.Book) {
	m.mu.Lock()
	defer m.mu.Unlock()

	shelf, ok := m.shelves[shelfID]
	if !ok {
		return
	}
	shelf.Books = books
	m.shelves[shelfID] = shelf
}
