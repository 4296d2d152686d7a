package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Airline errors
var (
	ErrAirlineNotFound  = NewCustomError(ErrResourceNotFound, "Airline not found.")
	ErrInvalidAirlineID = NewCustomError(ErrBadRequest, "Invalid airline ID.")
	ErrInvalidAirportID = NewCustomError(ErrValidationFailed, "Airport IDs must be integers.")
)

// Store errors
var (
	// ErrAirportReference is returned when a link points at an airport that does not exist.
	ErrAirportReference = errors.New("airline-airport link references a missing record")
)

// NewValidationError creates a new custom error for a failed validation with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// UserMessage returns the message of the outermost CustomError in the chain, or "".
func UserMessage(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return ""
}
