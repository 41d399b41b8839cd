package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
	"github.com/raduapetrei/bookshelf-api/internal/store"
)

func newTestBookService(books store.BookStore) *bookService {
	return &bookService{
		books:  books,
		logger: slog.Default(),
		runTx:  passthroughTx,
	}
}

func TestBookService_GetBook(t *testing.T) {
	t.Parallel()

	books := newStubBookStore()
	books.books["abc-123"] = domain.Book{
		ID:        "abc-123",
		BookTitle: "Moby Dick",
		Author:    "Herman Melville",
		NoOfPages: 585,
	}
	svc := newTestBookService(books)

	t.Run("returns existing book", func(t *testing.T) {
		book, err := svc.GetBook(context.Background(), "abc-123")
		require.NoError(t, err)
		assert.Equal(t, "Moby Dick", book.BookTitle)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.GetBook(context.Background(), "no-such-id")
		assert.ErrorIs(t, err, store.ErrBookNotFound)
	})

	t.Run("malformed id is rejected before lookup", func(t *testing.T) {
		_, err := svc.GetBook(context.Background(), "not/a/valid/id")
		assert.ErrorIs(t, err, domain.ErrInvalidID)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})
}

func TestBookService_CreateBook(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and persists", func(t *testing.T) {
		books := newStubBookStore()
		svc := newTestBookService(books)

		book, err := svc.CreateBook(context.Background(), BookInput{
			BookTitle: "Dune",
			Author:    "Frank Herbert",
			NoOfPages: 412,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, book.ID)
		assert.Len(t, books.books, 1)
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		books := newStubBookStore()
		svc := newTestBookService(books)

		_, err := svc.CreateBook(context.Background(), BookInput{
			BookTitle: "",
			Author:    "Frank Herbert",
			NoOfPages: 412,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Empty(t, books.books)
	})
}

func TestBookService_UpdateBook(t *testing.T) {
	t.Parallel()

	seed := func() *stubBookStore {
		books := newStubBookStore()
		books.books["id-1"] = domain.Book{
			ID:        "id-1",
			BookTitle: "Dune",
			Author:    "Frank Herbert",
			NoOfPages: 412,
			ShelfID:   "shelf-9",
		}
		return books
	}

	t.Run("preserves id and shelf association", func(t *testing.T) {
		books := seed()
		svc := newTestBookService(books)

		err := svc.UpdateBook(context.Background(), "Dune", BookInput{
			BookTitle: "Dune Messiah",
			Author:    "Frank Herbert",
			NoOfPages: 256,
		})
		require.NoError(t, err)

		got := books.books["id-1"]
		assert.Equal(t, "Dune Messiah", got.BookTitle)
		assert.Equal(t, 256, got.NoOfPages)
		assert.Equal(t, "shelf-9", got.ShelfID)
	})

	t.Run("unknown title is not found", func(t *testing.T) {
		svc := newTestBookService(seed())

		err := svc.UpdateBook(context.Background(), "Hyperion", BookInput{
			BookTitle: "Hyperion",
			Author:    "Dan Simmons",
			NoOfPages: 482,
		})
		assert.ErrorIs(t, err, store.ErrBookNotFound)
	})

	t.Run("invalid input wins over missing book", func(t *testing.T) {
		svc := newTestBookService(seed())

		err := svc.UpdateBook(context.Background(), "Hyperion", BookInput{
			BookTitle: "",
			Author:    "",
			NoOfPages: 0,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate titles update the oldest book", func(t *testing.T) {
		books := seed()
		books.books["id-2"] = domain.Book{
			ID:        "id-2",
			BookTitle: "Dune",
			Author:    "Frank Herbert",
			NoOfPages: 412,
		}
		svc := newTestBookService(books)

		err := svc.UpdateBook(context.Background(), "Dune", BookInput{
			BookTitle: "Dune (revised)",
			Author:    "Frank Herbert",
			NoOfPages: 500,
		})
		require.NoError(t, err)
		assert.Equal(t, "Dune (revised)", books.books["id-1"].BookTitle)
		assert.Equal(t, "Dune", books.books["id-2"].BookTitle)
	})
}

func TestBookService_DeleteBook(t *testing.T) {
	t.Parallel()

	t.Run("removes the book found by title", func(t *testing.T) {
		books := newStubBookStore()
		books.books["id-1"] = domain.Book{ID: "id-1", BookTitle: "Dune", Author: "a", NoOfPages: 1}
		books.books["id-2"] = domain.Book{ID: "id-2", BookTitle: "Dune", Author: "a", NoOfPages: 1}
		svc := newTestBookService(books)

		err := svc.DeleteBook(context.Background(), "Dune")
		require.NoError(t, err)

		_, stillThere := books.books["id-2"]
		assert.True(t, stillThere)
		_, gone := books.books["id-1"]
		assert.False(t, gone)
	})

	t.Run("unknown title is not found", func(t *testing.T) {
		svc := newTestBookService(newStubBookStore())

		err := svc.DeleteBook(context.Background(), "Hyperion")
		assert.ErrorIs(t, err, store.ErrBookNotFound)
	})
}
