package api

import (
	"errors"
	"strings"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "full envelope",
			err: &APIError{
				StatusCode: 400,
				Envelope:   Envelope{Code: "400", Error: "BAD_VALUE", Message: "invalid"},
			},
			want: "slidegate: 400 BAD_VALUE: invalid",
		},
		{
			name: "error code only",
			err: &APIError{
				StatusCode: 429,
				Envelope:   Envelope{Error: "RATE_LIMITED"},
			},
			want: "slidegate: 429 RATE_LIMITED",
		},
		{
			name: "bare status",
			err:  &APIError{StatusCode: 500},
			want: "slidegate: HTTP 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{Err: cause, URL: "https://example.com/api"}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the underlying cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}
