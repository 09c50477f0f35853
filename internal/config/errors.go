package config

import (
	"errors"
	"fmt"

	"github.com/rafters-ui/rafters/internal/urls"
)

// ErrorKind represents the category of configuration error that occurred
type ErrorKind int

const (
	// KindNotInitialized indicates the project has no .rafters/config.json
	KindNotInitialized ErrorKind = iota
	// KindInvalidConfig indicates the config file exists but could not be
	// parsed or failed schema validation
	KindInvalidConfig
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindNotInitialized:
		return "Not Initialized"
	case KindInvalidConfig:
		return "Invalid Config"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// ConfigError represents a failure to locate or load the project config
type ConfigError struct {
	Kind    ErrorKind // Category of error
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewNotInitializedError creates the error returned when no config file
// exists for a project. The message names the remedy.
func NewNotInitializedError(cwd string) *ConfigError {
	return &ConfigError{
		Kind:    KindNotInitialized,
		Message: fmt.Sprintf("no Rafters config found in %s - run 'rafters init' to set up this project", cwd),
	}
}

// NewInvalidConfigError creates the error returned when the config file
// exists but cannot be used. The underlying parse/validation failure is
// preserved verbatim to aid debugging.
func NewInvalidConfigError(message string, err error) *ConfigError {
	return &ConfigError{
		Kind:    KindInvalidConfig,
		Message: message,
		Err:     err,
	}
}

// IsNotInitialized checks if an error is a missing-config error
func IsNotInitialized(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) && cfgErr.Kind == KindNotInitialized
}

// IsInvalidConfig checks if an error is a broken-config error
func IsInvalidConfig(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) && cfgErr.Kind == KindInvalidConfig
}

// Remedy returns user-facing advice for a configuration error
func Remedy(err error) string {
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		return ""
	}

	switch cfgErr.Kind {
	case KindNotInitialized:
		return "Run 'rafters init' in your project root.\nSee " + urls.GettingStarted
	case KindInvalidConfig:
		return "Fix or delete .rafters/config.json and re-run 'rafters init'.\nSee " + urls.Configuration
	default:
		return ""
	}
}
