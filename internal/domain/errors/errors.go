// Package errors defines the application error taxonomy shared by the
// persistence coordinator and the delivery layer.
package errors

import (
	"net/http"

	"trailforge/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Save-policy errors. Every terminal coordinator outcome maps to
	// exactly one of these or to a success.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Route input failed validation",
		"",
	)

	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Sign in to sync routes with the server",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	ErrRemoteFailure = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_FAILURE",
		"The route server could not complete the request",
		"",
	)

	// Collection and draft errors
	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"Route not found",
		"",
	)

	ErrDraftNotFound = NewBaseError(
		http.StatusNotFound,
		"DRAFT_NOT_FOUND",
		"Draft session not found",
		"",
	)

	ErrGeometryTooShort = NewBaseError(
		http.StatusBadRequest,
		"GEOMETRY_TOO_SHORT",
		"A route needs at least two points",
		"",
	)

	ErrPointOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"POINT_OUT_OF_RANGE",
		"Point index is outside the draft geometry",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)
