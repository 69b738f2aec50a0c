package httpx

import (
	"fmt"
	"net/http"
)

// Business error codes
const (
	// Success
	CodeSuccess = 0

	// Parameter/validation errors (2000-2099)
	CodeValidation = 2001 // Missing or malformed caller input

	// Resource errors (3000-3999)
	CodeNotFound = 3001 // Lookup target absent or inactive

	// System errors (5000-5999)
	CodeInternalError = 5001 // Internal service error
	CodeStorageError  = 5002 // Persistence layer unreachable or rejected the write
)

// AppError represents an application error with HTTP status and business code
type AppError struct {
	HTTPStatus int    // HTTP status code
	Code       int    // Business error code
	Message    string // User-facing error message
	Err        error  // Internal error (for logging only, not returned to client)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("code=%d, message=%s, err=%v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("code=%d, message=%s", e.Code, e.Message)
}

// Unwrap exposes the internal error for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(httpStatus, code int, message string, err error) *AppError {
	return &AppError{
		HTTPStatus: httpStatus,
		Code:       code,
		Message:    message,
		Err:        err,
	}
}

// ErrValidation creates a 400 validation error
func ErrValidation(message string) *AppError {
	if message == "" {
		message = "invalid request"
	}
	return NewAppError(http.StatusBadRequest, CodeValidation, message, nil)
}

// ErrNotFound creates a 404 not found error
func ErrNotFound(message string) *AppError {
	if message == "" {
		message = "resource not found"
	}
	return NewAppError(http.StatusNotFound, CodeNotFound, message, nil)
}

// ErrStorage creates a 500 storage error.
// The internal error is kept for server-side logs only; the client
// message stays generic so storage details never leak outward.
func ErrStorage(message string, err error) *AppError {
	if message == "" {
		message = "storage operation failed"
	}
	return NewAppError(http.StatusInternalServerError, CodeStorageError, message, err)
}

// ErrInternal creates a 500 internal error
func ErrInternal(message string, err error) *AppError {
	if message == "" {
		message = "internal server error"
	}
	return NewAppError(http.StatusInternalServerError, CodeInternalError, message, err)
}
