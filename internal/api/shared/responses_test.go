package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)

	RespondWithError(w, r, http.StatusNotFound, "Invalid credentials")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"error": "Invalid credentials"}, body)
}

func TestRespondWithMessage(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/books/x", nil)

	RespondWithMessage(w, r, http.StatusNotFound, "Book not found")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"message": "Book not found"}, body)
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/books", nil)

	RespondWithJSON(w, r, http.StatusOK, []string{"a", "b"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["a","b"]`, w.Body.String())
}
