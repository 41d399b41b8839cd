package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// ContextKey is the type used for values stored in request contexts.
type ContextKey string

const (
	// UsernameContextKey holds the authenticated username.
	UsernameContextKey ContextKey = "username"

	// TraceIDKey holds the per-request trace ID.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace ID.
	traceIDLength = 16
)

// SetTraceID adds a freshly generated trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" when absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func generateTraceID() string {
	b := make([]byte, traceIDLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand should never fail; a UUID still gives a unique ID
		return uuid.NewString()
	}
	return hex.EncodeToString(b)
}
