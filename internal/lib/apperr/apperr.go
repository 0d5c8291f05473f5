// Package apperr defines the error taxonomy shared by services, storage and HTTP handlers.
//
// Storage and services wrap these sentinels with fmt.Errorf("%s: %w", op, err);
// handlers classify them with errors.Is. Anything that matches none of them is
// an unexpected (infrastructure) failure.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned for malformed input that never reaches the store.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when a lookup misses.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConflict is returned when a unique field is already taken.
	ErrConflict = errors.New("already exists")
	// ErrTokenInvalid covers bad signatures, malformed payloads and expired tokens alike.
	ErrTokenInvalid = errors.New("invalid or expired token")
	// ErrAuthRequired is returned when neither a session nor a bearer token is present.
	ErrAuthRequired = errors.New("user not authenticated")
	// ErrForbidden is returned when an authenticated account acts on a resource it does not own.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError describes the first schema violation found in a payload.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidation builds a ValidationError for field.
func NewValidation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsUnexpected reports whether err falls outside the known taxonomy.
func IsUnexpected(err error) bool {
	for _, known := range []error{
		ErrValidation, ErrNotFound, ErrInvalidCredentials, ErrConflict,
		ErrTokenInvalid, ErrAuthRequired, ErrForbidden,
	} {
		if errors.Is(err, known) {
			return false
		}
	}
	return true
}
