package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrMissingAPIKey indicates no API key was configured.
	ErrMissingAPIKey = errors.New("API key is required")
	// ErrMissingBaseURL indicates no base URL was configured.
	ErrMissingBaseURL = errors.New("base URL is required")
	// ErrMissingAppName indicates no application name was configured.
	ErrMissingAppName = errors.New("application name is required")
)

// APIError represents a non-2xx response whose body parsed as the
// SlideGate envelope. The envelope fields are carried verbatim so
// callers can branch on the service's own code/error values.
type APIError struct {
	StatusCode int
	Envelope   Envelope
}

func (e *APIError) Error() string {
	if e.Envelope.Message != "" {
		return fmt.Sprintf("slidegate: %d %s: %s", e.StatusCode, e.Envelope.Error, e.Envelope.Message)
	}
	if e.Envelope.Error != "" {
		return fmt.Sprintf("slidegate: %d %s", e.StatusCode, e.Envelope.Error)
	}
	return fmt.Sprintf("slidegate: HTTP %d", e.StatusCode)
}

// NetworkError represents a transport-level failure: the request never
// produced a parseable envelope. The underlying cause is reachable via
// Unwrap and is never rewritten.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
