package providers

import (
	"fmt"
	"time"
)

// ProviderError represents a non-success upstream response. Message carries
// the upstream response body text so callers can relay it.
type ProviderError struct {
	// Provider is the name of the provider that returned the error.
	Provider string

	// StatusCode is the upstream HTTP status code (0 if not applicable).
	StatusCode int

	// Message is the upstream response body text.
	Message string

	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %q error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider %q error: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// TimeoutError represents a request that exceeded the configured timeout or
// was cancelled by the caller.
type TimeoutError struct {
	// Provider is the name of the provider where the timeout occurred.
	Provider string

	// Timeout is the configured timeout duration.
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("provider %q request timeout after %s", e.Provider, e.Timeout)
}

// ParseError represents a response that could not be decoded.
type ParseError struct {
	// Provider is the name of the provider that returned the response.
	Provider string

	// RawResponse is the raw response body that failed to parse.
	RawResponse string

	// Cause is the underlying parse error.
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("provider %q response parse error: %v", e.Provider, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ConfigError represents an invalid provider configuration.
type ConfigError struct {
	// Provider is the provider name (may be empty if the name itself is
	// the problem).
	Provider string

	// Field is the offending configuration field.
	Field string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("provider %q config error: %s: %s", e.Provider, e.Field, e.Message)
}
