package types

import (
	"errors"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeAuth       ErrorType = "authentication"
	ErrorTypeInternal   ErrorType = "internal"
)

// AppError represents a structured error carried from the services up to the
// HTTP responder. The message is user-visible; the cause is not.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error returns the user-visible message. The type and cause travel as
// separate fields; callers that need them use Type and Unwrap.
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error type to the status code the API responds with.
func (e *AppError) HTTPStatus() int {
	switch e.Type {
	case ErrorTypeValidation, ErrorTypeConflict:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// NewConflictError creates a new business-rule conflict error
func NewConflictError(message string) *AppError {
	return &AppError{Type: ErrorTypeConflict, Message: message}
}

// NewAuthError creates a new authentication error
func NewAuthError(message string) *AppError {
	return &AppError{Type: ErrorTypeAuth, Message: message}
}

// NewInternalError creates a new internal error wrapping its cause
func NewInternalError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Cause: cause}
}

// AsAppError extracts an *AppError from err, or wraps err as an internal
// error so no raw failure ever reaches a client.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("Internal Server Error", err)
}
