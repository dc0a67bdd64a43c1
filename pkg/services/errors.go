package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden is returned for cross-tenant access attempts
	ErrForbidden = errors.New("operation not permitted for this tenant")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IdempotencyConflictError reports a replayed idempotency key. It carries
// the first-accepted event so the caller can return it with the conflict.
type IdempotencyConflictError struct {
	GlobalSeq   int64
	EventID     string
	ReceivedAt  string
	PayloadHash string
}

func (e *IdempotencyConflictError) Error() string {
	return fmt.Sprintf("idempotency key already used by event %s (global_seq %d)",
		e.EventID, e.GlobalSeq)
}

// IsIdempotencyConflict checks if an error is an idempotency conflict
func IsIdempotencyConflict(err error) bool {
	var ce *IdempotencyConflictError
	return errors.As(err, &ce)
}
