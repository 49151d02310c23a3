package usecase

import (
	"errors"
	"fmt"

	"teide-booking/pkg/utils"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict marks a reference collision; the booking engine retries it
	// and never returns it to callers.
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal error")
)

// ValidationError lists the offending fields.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", utils.FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func validationFailed(field, msg string) *ValidationError {
	return NewValidationError(map[string]string{field: msg})
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
}
