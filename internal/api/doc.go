// Package api provides HTTP client functionality for communicating with
// the SlideGate verification API. It handles header injection, JSON
// serialization, and normalization of the response envelope into typed
// errors.
//
// # Request Model
//
// Every request carries four headers: Api-Key, X-App, X-Client-IP, and
// Content-Type: application/json. The URL is built as BaseURL + path
// with no slash normalization. There is no retry logic: a single failed
// attempt surfaces immediately, and cancellation is driven entirely by
// the caller's context.
//
// # Error Handling
//
// Every response body is parsed as the service envelope regardless of
// HTTP status. Failures come in exactly two shapes:
//
//   - [APIError]: non-2xx status with a parseable envelope. Carries the
//     service's code, error, message, and data verbatim.
//   - [NetworkError]: the request never produced a parseable envelope
//     (connection failure or malformed body). Unwrap exposes the cause.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. The client IP is the
// only mutable state; concurrent SetClientIP calls are last-writer-wins.
package api
