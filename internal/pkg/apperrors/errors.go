package apperrors

import (
	"errors"
	"net/http"
)

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrBadRequest       = errors.New("bad request")
)

// APIError is an error that knows how it should be presented to a client:
// a message and the HTTP status that goes with it.
type APIError struct {
	Message    string
	StatusCode int
	Err        error
}

// Error implements error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *APIError) Unwrap() error {
	return e.Err
}

// ToMap renders the error body sent to clients.
func (e *APIError) ToMap() map[string]interface{} {
	return map[string]interface{}{"message": e.Message}
}

// NewAPIError creates an APIError; a zero status means 400.
func NewAPIError(message string, statusCode int) *APIError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &APIError{Message: message, StatusCode: statusCode, Err: ErrBadRequest}
}

// NewConflictError creates a 409 error wrapping ErrConflict
func NewConflictError(message string) *APIError {
	return &APIError{Message: message, StatusCode: http.StatusConflict, Err: ErrConflict}
}

// NewResourceNotFoundError creates a 404 error wrapping ErrResourceNotFound
func NewResourceNotFoundError(message string) *APIError {
	return &APIError{Message: message, StatusCode: http.StatusNotFound, Err: ErrResourceNotFound}
}

// IsNotFound reports whether err is, or wraps, ErrResourceNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}
