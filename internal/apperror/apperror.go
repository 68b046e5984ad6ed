// Package apperror defines the application's error taxonomy.
//
// Services return these domain errors; the HTTP layer maps them to status
// codes and the client-side stores map them to failed-status messages.
// Neither layer branches on anything finer than the sentinel.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrNetwork    = errors.New("network error")
	ErrUpstream   = errors.New("upstream error")
)

// AppError pairs a sentinel with a human-readable message.
type AppError struct {
	Err     error
	Message string
	Field   string // optional: field causing a validation error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that an operation targeted an identifier absent from the
// canonical store.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// ValidationFailed reports a required-field or length violation caught at
// the input boundary.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Network reports a failed request or a non-2xx response. Every transport
// failure is treated uniformly; callers do not branch on status codes.
func Network(op string, cause error) *AppError {
	msg := fmt.Sprintf("%s failed", op)
	if cause != nil {
		msg = fmt.Sprintf("%s failed: %v", op, cause)
	}
	return &AppError{
		Err:     ErrNetwork,
		Message: msg,
	}
}

// Upstream reports a failure of a third-party collaborator (the language
// model provider).
func Upstream(message string) *AppError {
	return &AppError{
		Err:     ErrUpstream,
		Message: message,
	}
}
