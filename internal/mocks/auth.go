package mocks

import (
	"context"
	"errors"

	"github.com/raduapetrei/bookshelf-api/internal/service/auth"
)

// MockJWTService is a configurable test double for auth.JWTService.
type MockJWTService struct {
	// Token is returned by GenerateToken when Err is nil.
	Token string
	// Err, when set, is returned by GenerateToken.
	Err error
	// Claims is returned by ValidateToken when ValidateErr is nil.
	Claims *auth.Claims
	// ValidateErr, when set, is returned by ValidateToken.
	ValidateErr error
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.GenerateToken.
func (m *MockJWTService) GenerateToken(ctx context.Context, username string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken implements auth.JWTService.ValidateToken.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return &auth.Claims{Username: "test-user"}, nil
}

// MockPasswordHasher is a test double for auth.PasswordHasher that marks
// hashes with a recognizable prefix.
type MockPasswordHasher struct {
	// Err, when set, is returned by Hash.
	Err error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.Hash.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier is a test double for auth.PasswordVerifier matching
// the MockPasswordHasher convention.
type MockPasswordVerifier struct {
	// ShouldSucceed forces the outcome regardless of inputs when set.
	ShouldSucceed bool
	// Strict, when true, compares against the MockPasswordHasher convention
	// instead of using ShouldSucceed.
	Strict bool
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier.Compare.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.Strict {
		if hashedPassword == "hashed:"+password {
			return nil
		}
		return errors.New("password mismatch")
	}
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
