// Package domain defines the core business entities and errors.
package domain

import "errors"

// Error classes shared across the application. Field-level sentinels wrap one
// of these so callers can dispatch with errors.Is without caring about the
// specific field that failed.
var (
	// ErrValidation is returned when a shelf or user entity fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidArgument is returned when book fields or identifiers are
	// malformed. Book field errors use this class rather than ErrValidation;
	// the two kinds stay distinct even though both map to HTTP 400 at the
	// API boundary.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidID is returned when an identifier contains characters outside
	// the accepted set.
	ErrInvalidID = errors.New("invalid ID")
)
