package api

import (
	"errors"
	"net/http"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
	"github.com/raduapetrei/bookshelf-api/internal/service"
	"github.com/raduapetrei/bookshelf-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Login failures report 404, not 401. The published contract treats an
	// unknown username and a wrong password identically.
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusNotFound

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for the given error.
// Domain validation sentinels carry static, safe text and are surfaced as-is;
// everything else collapses to a fixed message per class.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrBookNotFound):
		return "Book not found"

	case errors.Is(err, store.ErrShelfNotFound):
		return "Shelf not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrValidation):
		return err.Error()

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}
