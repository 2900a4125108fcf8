// Package common defines sentinel errors and small helpers shared by the
// PocketBank client layers. Callers should use errors.Is to match these
// values; lower layers wrap them with fmt.Errorf("...: %w").
package common

import "errors"

var (
	// Validation errors. Field-level, resolved before any storage access.
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidAmount    = errors.New("invalid amount")

	// Repository-level errors.
	ErrNotFound          = errors.New("not found")
	ErrDuplicateIdentity = errors.New("account already exists")

	// ErrStorage wraps any failure of the underlying key-value store,
	// including undecodable stored values. Not retried.
	ErrStorage = errors.New("storage error")

	// Auth and session errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStaleSession       = errors.New("user data not found")
)
