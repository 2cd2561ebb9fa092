package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Error kinds. Adapters wrap driver errors into one of these and transport
// maps them to status codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	// ErrConflict is a lost optimistic-concurrency race on a card version.
	ErrConflict = errors.New("conflict")
	// ErrTransient is a timeout, dropped connection or serialization failure.
	ErrTransient = errors.New("transient failure")
)

// IsRetryable reports whether err is worth retrying with fresh state.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrTransient)
}

// FieldError is one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// Violations collects field errors while an input is checked.
type Violations []FieldError

// Add records a problem with field.
func (v *Violations) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Err is nil when nothing was recorded.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Errors: slices.Clone(v)}
}

// ValidationError lists every rejected field of one input. It matches
// ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "validation failed"
	case 1:
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	names := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		names[i] = fe.Field
	}
	return "validation: invalid " + strings.Join(names, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
