package registry

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of registry error that occurred
type ErrorType int

const (
	// ErrTypeNotFound indicates the registry has no component by that name
	ErrTypeNotFound ErrorType = iota
	// ErrTypeTransport indicates a network-level failure reaching the registry
	ErrTypeTransport
	// ErrTypeHTTP indicates a non-200 response other than 404
	ErrTypeHTTP
	// ErrTypeDecode indicates the registry returned malformed JSON
	ErrTypeDecode
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNotFound:
		return "Not Found"
	case ErrTypeTransport:
		return "Transport Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeDecode:
		return "Decode Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error represents a failure talking to the component registry
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

func newNotFoundError(name string) *Error {
	return &Error{
		Type:    ErrTypeNotFound,
		Message: fmt.Sprintf("component %q does not exist in the registry", name),
	}
}

func newTransportError(message string, err error) *Error {
	return &Error{
		Type:    ErrTypeTransport,
		Message: message,
		Err:     err,
	}
}

func newHTTPError(statusCode int, message string) *Error {
	return &Error{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
	}
}

func newDecodeError(message string, err error) *Error {
	return &Error{
		Type:    ErrTypeDecode,
		Message: message,
		Err:     err,
	}
}

// IsNotFound checks if an error means the component name is unknown
func IsNotFound(err error) bool {
	var regErr *Error
	return errors.As(err, &regErr) && regErr.Type == ErrTypeNotFound
}
