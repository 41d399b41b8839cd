package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raduapetrei/bookshelf-api/internal/api/shared"
	"github.com/raduapetrei/bookshelf-api/internal/service"
)

// ShelfHandler handles shelf management requests.
type ShelfHandler struct {
	shelfService service.ShelfService
}

// NewShelfHandler creates a ShelfHandler with the given dependencies.
func NewShelfHandler(shelfService service.ShelfService) *ShelfHandler {
	return &ShelfHandler{shelfService: shelfService}
}

// ListShelves handles GET /api/user-shelves.
func (h *ShelfHandler) ListShelves(w http.ResponseWriter, r *http.Request) {
	shelves, err := h.shelfService.ListShelves(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shelves)
}

// GetShelf handles GET /api/user-shelves/{id}.
func (h *ShelfHandler) GetShelf(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	shelf, err := h.shelfService.GetShelf(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shelf)
}

// CreateShelf handles POST /api/user-shelves.
func (h *ShelfHandler) CreateShelf(w http.ResponseWriter, r *http.Request) {
	var req ShelfRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	shelf, err := h.shelfService.CreateShelf(r.Context(), service.ShelfInput{
		ShelfName: req.ShelfName,
		Capacity:  req.Capacity,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, shelf)
}

// UpdateShelf handles PUT /api/user-shelves/{id}.
func (h *ShelfHandler) UpdateShelf(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ShelfRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	shelf, err := h.shelfService.UpdateShelf(r.Context(), id, service.ShelfInput{
		ShelfName: req.ShelfName,
		Capacity:  req.Capacity,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shelf)
}

// DeleteShelf handles DELETE /api/user-shelves/{id}. The shelf's books are
// not deleted with it.
func (h *ShelfHandler) DeleteShelf(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.shelfService.DeleteShelf(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Shelf deleted successfully")
}

// ListShelfBooks handles GET /api/user-shelves/{id}/books.
func (h *ShelfHandler) ListShelfBooks(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	books, err := h.shelfService.GetShelfBooks(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, books)
}

func (h *ShelfHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusInternalServerError {
		slog.Error("shelf request failed",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path))
		shared.RespondWithMessage(w, r, status, "An unexpected error occurred")
		return
	}
	shared.RespondWithMessage(w, r, status, GetSafeErrorMessage(err))
}
