// Package errors defines the domain error taxonomy. Every failure the services
// report to the delivery layer is one of these classifications; nothing in the
// core surfaces as an unclassified error.
package errors

import (
	"net/http"

	"identity/internal/domain/service"
	"identity/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Structured error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns structured error information.
func (e *BaseError) Details() any {
	return nil
}

// Predefined error types. Each failure in the core is terminal and maps to
// exactly one of these; the HTTP layer only translates, never reclassifies.
var (
	// ErrCredentialsRequired is returned when the login payload is missing
	// the email or the password.
	ErrCredentialsRequired = NewBaseError(
		http.StatusBadRequest,
		"CREDENTIALS_REQUIRED",
		"Email and password are required",
	)

	// ErrUserNotFound is returned when no user exists at the given key.
	// Login intentionally keeps this distinct from ErrIncorrectPassword.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	// ErrIncorrectPassword is returned when the supplied password does not
	// match the stored credential.
	ErrIncorrectPassword = NewBaseError(
		http.StatusUnauthorized,
		"INCORRECT_PASSWORD",
		"Incorrect password",
	)

	// ErrEmailTaken is returned when a create or update would violate email
	// uniqueness. Surfaced as a distinct Conflict rather than a generic
	// validation failure.
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"A user with this email already exists",
	)

	// ErrNoUsers is returned when a listing page is empty.
	ErrNoUsers = NewBaseError(
		http.StatusNotFound,
		"NO_USERS",
		"No users found",
	)

	// ErrFieldsRequired is returned when an update payload omits one of the
	// name, email, or password fields. Updates are a full replace.
	ErrFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"FIELDS_REQUIRED",
		"Name, email, and password are required",
	)

	// ErrUnauthorized is returned for missing or invalid bearer tokens.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired token",
	)
)

// ValidationError carries every field-level violation found in one validation
// pass. None are swallowed; the delivery layer serializes all of them.
type ValidationError struct {
	Fields []service.FieldError
}

// NewValidationError creates a ValidationError from collected field errors.
func NewValidationError(fields []service.FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed"
}

// HTTPCode returns the HTTP status code.
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code.
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message.
func (e *ValidationError) Message() string {
	return "One or more fields are invalid"
}

// Details returns the collected field errors.
func (e *ValidationError) Details() any {
	return e.Fields
}
