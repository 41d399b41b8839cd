// Package auth provides token issuance and password handling.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and validating bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token asserting the given username.
	// The token's validity window is fixed at issuance time.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ValidateToken validates the token string and extracts its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims carries the verified content of a bearer token.
type Claims struct {
	// Username is the subject the token was issued for.
	Username string

	IssuedAt  time.Time
	ExpiresAt time.Time

	// ID is the unique token identifier (jti).
	ID string
}
