package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the error envelope used by the user-facing auth endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the envelope used by the book and shelf endpoints for
// both failure messages and plain-text confirmations. The two envelope keys
// differ between controller families; both shapes are part of the public
// contract and kept as-is.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path))
	}
}

// RespondWithError writes an {"error": ...} envelope with the given status.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logResponse(r, status, message)
	RespondWithJSON(w, r, status, ErrorResponse{Error: message})
}

// RespondWithMessage writes a {"message": ...} envelope with the given status.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	logResponse(r, status, message)
	RespondWithJSON(w, r, status, MessageResponse{Message: message})
}

func logResponse(r *http.Request, status int, message string) {
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.LogAttrs(r.Context(), level, "api response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))
}
