package errors

import (
	"net/http"

	"sukhan/internal/errors"
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrUserBlocked = NewBaseError(
		http.StatusForbidden,
		"USER_BLOCKED",
		"This account has been blocked",
		"",
	)

	ErrUserNotVerified = NewBaseError(
		http.StatusForbidden,
		"USER_NOT_VERIFIED",
		"Please verify your email before logging in",
		"",
	)

	ErrAdminUndeletable = NewBaseError(
		http.StatusForbidden,
		"ADMIN_UNDELETABLE",
		"Admin accounts cannot be deleted",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OTP",
		"Invalid or expired verification code",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Content-related errors
	ErrPoetNotFound = NewBaseError(
		http.StatusNotFound,
		"POET_NOT_FOUND",
		"Poet not found",
		"",
	)

	ErrPoetProfileExists = NewBaseError(
		http.StatusConflict,
		"POET_PROFILE_EXISTS",
		"You already have a poet profile",
		"",
	)

	ErrPoetRegistrationClosed = NewBaseError(
		http.StatusForbidden,
		"POET_REGISTRATION_CLOSED",
		"Poet registration is currently disabled",
		"",
	)

	ErrPoetryNotFound = NewBaseError(
		http.StatusNotFound,
		"POETRY_NOT_FOUND",
		"Poetry not found",
		"",
	)

	ErrGenreNotFound = NewBaseError(
		http.StatusNotFound,
		"GENRE_NOT_FOUND",
		"Genre not found",
		"",
	)

	ErrRejectedPoemToggle = NewBaseError(
		http.StatusConflict,
		"REJECTED_POEM_TOGGLE",
		"A rejected poem cannot be republished with the publish toggle",
		"",
	)

	ErrFeedbackNotFound = NewBaseError(
		http.StatusNotFound,
		"FEEDBACK_NOT_FOUND",
		"Feedback not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidRatingScore = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING_SCORE",
		"Rating must be between 1 and 5",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
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

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrMaintenanceMode = NewBaseError(
		http.StatusServiceUnavailable,
		"MAINTENANCE_MODE",
		"The platform is under maintenance, please try again later",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
