package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("frank", "frank@example.com", "secret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID != 0 {
		t.Errorf("Expected zero ID before storage assigns one, got %d", user.ID)
	}

	if user.Username != "frank" {
		t.Errorf("Expected username frank, got %s", user.Username)
	}

	if user.Email != "frank@example.com" {
		t.Errorf("Expected email frank@example.com, got %s", user.Email)
	}

	if user.Password != "secret" {
		t.Errorf("Expected transient password to be kept, got %s", user.Password)
	}
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"empty username", "", "a@b.com", "pw", ErrEmptyUsername},
		{"empty email", "frank", "", "pw", ErrEmptyEmail},
		{"empty password", "frank", "a@b.com", "", ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected a validation error, got %v", err)
			}
		})
	}
}

func TestUserValidateWithHashedPasswordOnly(t *testing.T) {
	t.Parallel()

	// A user loaded from storage has no plaintext password
	user := User{ID: 7, Username: "frank", Email: "frank@example.com", HashedPassword: "$2a$10$abc"}
	if err := user.Validate(); err != nil {
		t.Errorf("Expected stored user to validate, got %v", err)
	}
}

func TestUserJSONNeverExposesPasswords(t *testing.T) {
	t.Parallel()

	user := User{
		ID:             1,
		Username:       "frank",
		Email:          "frank@example.com",
		Password:       "plaintext",
		HashedPassword: "$2a$10$abc",
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	out := string(data)
	if strings.Contains(out, "plaintext") || strings.Contains(out, "$2a$10$abc") {
		t.Errorf("Expected passwords to be excluded from JSON, got %s", out)
	}
}
