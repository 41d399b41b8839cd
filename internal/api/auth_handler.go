package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/raduapetrei/bookshelf-api/internal/api/middleware"
	"github.com/raduapetrei/bookshelf-api/internal/api/shared"
	"github.com/raduapetrei/bookshelf-api/internal/service"
)

// AuthHandler handles registration, login and identity requests.
//
// These endpoints use the {"error"} envelope, unlike the book and shelf
// endpoints which use {"message"}. Both shapes are part of the published
// contract.
type AuthHandler struct {
	userService service.UserService
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	if err := h.userService.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusInternalServerError {
			slog.Error("failed to register user",
				slog.String("error", err.Error()),
				slog.String("username", req.Username))
			shared.RespondWithError(w, r, status, "Failed to register user")
			return
		}
		shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated,
		shared.MessageResponse{Message: "User registered successfully"})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := h.userService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Invalid credentials")
			return
		}
		slog.Error("failed to authenticate user",
			slog.String("error", err.Error()),
			slog.String("username", req.Username))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// Me handles GET /api/me. The auth middleware has already validated the
// bearer token and stored the username in the context.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsername(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MeResponse{Username: username})
}
