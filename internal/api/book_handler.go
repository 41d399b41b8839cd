package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raduapetrei/bookshelf-api/internal/api/shared"
	"github.com/raduapetrei/bookshelf-api/internal/service"
)

// BookHandler handles book management requests.
//
// Update and delete address books by title, not ID. That is the published
// route shape and is kept as-is.
type BookHandler struct {
	bookService service.BookService
}

// NewBookHandler creates a BookHandler with the given dependencies.
func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// ListBooks handles GET /api/books.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, books)
}

// GetBook handles GET /api/books/{id}. A malformed ID yields 400, an unknown
// one 404.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	book, err := h.bookService.GetBook(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// CreateBook handles POST /api/books.
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	book, err := h.bookService.CreateBook(r.Context(), service.BookInput{
		BookTitle: req.BookTitle,
		Author:    req.Author,
		NoOfPages: req.NoOfPages,
		ShelfID:   req.ShelfID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// UpdateBook handles PUT /api/books/{title}.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	var req BookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := h.bookService.UpdateBook(r.Context(), title, service.BookInput{
		BookTitle: req.BookTitle,
		Author:    req.Author,
		NoOfPages: req.NoOfPages,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Book updated successfully")
}

// DeleteBook handles DELETE /api/books/{title}.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	if err := h.bookService.DeleteBook(r.Context(), title); err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Book deleted successfully")
}

func (h *BookHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusInternalServerError {
		slog.Error("book request failed",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path))
		shared.RespondWithMessage(w, r, status, "An unexpected error occurred")
		return
	}
	shared.RespondWithMessage(w, r, status, GetSafeErrorMessage(err))
}
