package errors

import (
	"net/http"

	"compte/internal/errors"
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

// Predefined error types. User-facing messages are in French, matching the
// vocabulary of the service's clients.
var (
	// Registration errors
	ErrDuplicateIdentifier = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_IDENTIFIER",
		"Cet identifiant est déjà enregistré",
		"",
	)

	ErrHashingFailure = NewBaseError(
		http.StatusInternalServerError,
		"HASHING_FAILURE",
		"Une erreur est survenue lors du hachage. Veuillez contacter l'administrateur.",
		"",
	)

	// Login errors
	ErrUnknownAccount = NewBaseError(
		http.StatusUnauthorized,
		"UNKNOWN_ACCOUNT",
		"Compte inconnu",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Identifiants incorrects",
		"",
	)

	// Token errors. Rejections carrying a validation reason are built with
	// NewInvalidTokenError below.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Vous devez être authentifié",
		"",
	)

	// Update errors
	ErrMalformedRequest = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_REQUEST",
		"Exactement un champ parmi identifiant et mot de passe doit être fourni",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_NOT_FOUND",
		"Compte introuvable",
		"",
	)

	// General errors. Store failures are reported through
	// DatabaseExecuteError, which wraps the driver error.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erreur interne du service",
		"",
	)
)

// NewInvalidTokenError builds a token rejection carrying the validation
// failure reason, in the wire format expected by clients.
func NewInvalidTokenError(reason string) *BaseError {
	return NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Token invalide : "+reason,
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
// The raw driver error stays server-side; clients only see the generic message.
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

// Unwrap exposes the underlying driver error for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
	return "Une erreur est survenue lors de l'accès aux données"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
