// Package common defines the sentinel errors shared across layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors.
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorAccountInactive    = errors.New("account is inactive")
	ErrInvalidToken         = errors.New("invalid token")

	// Business-rule errors.
	ErrorUsernameTaken     = errors.New("username already exists")
	ErrorCannotDeleteAdmin = errors.New("cannot delete admin user")
	ErrorAlreadyClockedIn  = errors.New("already clocked in")
	ErrorNoActiveShift     = errors.New("no active shift found")

	// Generic internal failure (details stay in the server log).
	ErrorInternal = errors.New("internal error")
)
