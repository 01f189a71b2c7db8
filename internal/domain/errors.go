// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// Error kinds. Every service error wraps exactly one of these so
	// handlers can map to an HTTP status with errors.Is.
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")

	ErrInvalidInput = errors.New("invalid input")

	// Organization-related errors
	ErrOrganizationNotFound = fmt.Errorf("%w: organization", ErrNotFound)
)

// Error carries a caller-facing message alongside its kind. Messages are
// surfaced verbatim in API error bodies, so they name the offending entity.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFoundf builds a NotFound error with a formatted message.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbiddenf builds a Forbidden error with a formatted message.
func Forbiddenf(format string, args ...any) error {
	return &Error{Kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}

// BadRequestf builds a BadRequest error with a formatted message.
func BadRequestf(format string, args ...any) error {
	return &Error{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a Conflict error with a formatted message.
func Conflictf(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}
