// Package service provides application-level services for managing books,
// shelves and users.
package service

import "errors"

// Common service errors.
//
// Error handling follows one convention throughout: services return sentinel
// errors for expected conditions, wrap unexpected ones with %w, and the API
// layer dispatches with errors.Is to pick a status code.
var (
	// ErrInvalidCredentials is returned by Login when the username does not
	// exist or the password does not match. The two cases are deliberately
	// indistinguishable to the caller, and the API layer reports both as
	// 404 — an inherited contract, not a typo for 401.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
