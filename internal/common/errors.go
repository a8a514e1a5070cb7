package common

import "errors"

// Sentinel errors shared between client layers. Callers should match them
// with errors.Is.
var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation marks client-side input problems detected before any
	// network call is made.
	ErrValidation = errors.New("validation error")
)
