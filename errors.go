package slidegate

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/slidegate/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingBaseURL is returned when no base URL is provided.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrMissingAppName is returned when no application name is provided.
	ErrMissingAppName = errors.New("application name is required")

	// ErrUnexpectedResponse is returned when a success envelope carries a
	// data payload of a shape the operation does not understand.
	ErrUnexpectedResponse = errors.New("unexpected response shape")
)

// SlideGateError is implemented by all SDK errors.
type SlideGateError interface {
	error
	SlideGateError() // marker method
}

// ServiceError represents a non-2xx response from the SlideGate API.
// The four envelope fields are carried verbatim; Message is
// service-provided and safe to surface to end users.
type ServiceError struct {
	StatusCode int
	Code       string
	ErrorCode  string
	Message    string
	Data       json.RawMessage
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("slidegate: %d %s: %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	if e.ErrorCode != "" {
		return fmt.Sprintf("slidegate: %d %s", e.StatusCode, e.ErrorCode)
	}
	return fmt.Sprintf("slidegate: HTTP %d", e.StatusCode)
}

// SlideGateError implements the SlideGateError interface.
func (e *ServiceError) SlideGateError() {}

// Envelope reconstructs the service envelope attached to the error.
func (e *ServiceError) Envelope() Envelope {
	return Envelope{
		Code:    e.Code,
		Data:    e.Data,
		Error:   e.ErrorCode,
		Message: e.Message,
	}
}

// TransportError represents a network failure or an unparseable
// response body. The underlying cause is exposed unchanged via Unwrap
// and its message is not safe to show to end users.
type TransportError struct {
	Err error
	URL string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// SlideGateError implements the SlideGateError interface.
func (e *TransportError) SlideGateError() {}

// wrapError converts internal API errors to public errors so that
// type assertions and errors.As work against the public taxonomy.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &ServiceError{
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Envelope.Code,
			ErrorCode:  apiErr.Envelope.Error,
			Message:    apiErr.Envelope.Message,
			Data:       apiErr.Envelope.Data,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &TransportError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}
