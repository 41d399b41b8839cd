package mocks

import (
	"context"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
	"github.com/raduapetrei/bookshelf-api/internal/service"
)

// MockBookService is a function-backed test double for service.BookService.
type MockBookService struct {
	ListBooksFn  func(ctx context.Context) ([]domain.Book, error)
	GetBookFn    func(ctx context.Context, id string) (*domain.Book, error)
	CreateBookFn func(ctx context.Context, input service.BookInput) (*domain.Book, error)
	UpdateBookFn func(ctx context.Context, title string, input service.BookInput) error
	DeleteBookFn func(ctx context.Context, title string) error
}

var _ service.BookService = (*MockBookService)(nil)

func (m *MockBookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return m.ListBooksFn(ctx)
}

func (m *MockBookService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	return m.GetBookFn(ctx, id)
}

func (m *MockBookService) CreateBook(
	ctx context.Context,
	input service.BookInput,
) (*domain.Book, error) {
	return m.CreateBookFn(ctx, input)
}

func (m *MockBookService) UpdateBook(
	ctx context.Context,
	title string,
	input service.BookInput,
) error {
	return m.UpdateBookFn(ctx, title, input)
}

func (m *MockBookService) DeleteBook(ctx context.Context, title string) error {
	return m.DeleteBookFn(ctx, title)
}

// MockShelfService is a function-backed test double for service.ShelfService.
type MockShelfService struct {
	ListShelvesFn   func(ctx context.Context) ([]domain.UserShelf, error)
	GetShelfFn      func(ctx context.Context, id string) (*domain.UserShelf, error)
	CreateShelfFn   func(ctx context.Context, input service.ShelfInput) (*domain.UserShelf, error)
	UpdateShelfFn   func(ctx context.Context, id string, input service.ShelfInput) (*domain.UserShelf, error)
	DeleteShelfFn   func(ctx context.Context, id string) error
	CountBooksFn    func(ctx context.Context, id string) (int, error)
	GetShelfBooksFn func(ctx context.Context, id string) ([]domain.Book, error)
}

var _ service.ShelfService = (*MockShelfService)(nil)

func (m *MockShelfService) ListShelves(ctx context.Context) ([]domain.UserShelf, error) {
	return m.ListShelvesFn(ctx)
}

func (m *MockShelfService) GetShelf(ctx context.Context, id string) (*domain.UserShelf, error) {
	return m.GetShelfFn(ctx, id)
}

func (m *MockShelfService) CreateShelf(
	ctx context.Context,
	input service.ShelfInput,
) (*domain.UserShelf, error) {
	return m.CreateShelfFn(ctx, input)
}

func (m *MockShelfService) UpdateShelf(
	ctx context.Context,
	id string,
	input service.ShelfInput,
) (*domain.UserShelf, error) {
	return m.UpdateShelfFn(ctx, id, input)
}

func (m *MockShelfService) DeleteShelf(ctx context.Context, id string) error {
	return m.DeleteShelfFn(ctx, id)
}

func (m *MockShelfService) CountBooks(ctx context.Context, id string) (int, error) {
	return m.CountBooksFn(ctx, id)
}

func (m *MockShelfService) GetShelfBooks(ctx context.Context, id string) ([]domain.Book, error) {
	return m.GetShelfBooksFn(ctx, id)
}
