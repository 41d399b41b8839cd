package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails a storage constraint
	// (not null, check, foreign key). Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails to
	// begin or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrShelfNotFound indicates that the requested shelf does not exist.
	ErrShelfNotFound = fmt.Errorf("%w: shelf", ErrNotFound)

	// ErrBookNotFound indicates that the requested book does not exist.
	ErrBookNotFound = fmt.Errorf("%w: book", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
