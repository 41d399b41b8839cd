package domain

import (
	"fmt"
)

// User field validation errors.
var (
	ErrEmptyUsername = fmt.Errorf("%w: username is required", ErrValidation)
	ErrEmptyEmail    = fmt.Errorf("%w: email is required", ErrValidation)
	ErrEmptyPassword = fmt.Errorf("%w: password is required", ErrValidation)
)

// User represents a registered user of the bookshelf application.
//
// The numeric ID is assigned by the storage layer on creation. Duplicate
// usernames are deliberately not rejected at registration time; this mirrors
// the public contract of the system.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`

	// Password holds the plaintext password transiently during
	// registration and login. Never serialized, never stored.
	Password string `json:"-"`

	// HashedPassword is the bcrypt hash persisted by the store.
	HashedPassword string `json:"-"`
}

// NewUser creates a User from registration input. The ID stays zero until the
// store assigns one. Returns a validation error if any field is empty.
//
// The caller is responsible for hashing the password before storing the user.
func NewUser(username, email, password string) (*User, error) {
	user := &User{
		Username: username,
		Email:    email,
		Password: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that all required registration fields are present.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
