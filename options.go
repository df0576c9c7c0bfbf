package slidegate

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds the connection configuration for a Client. All three
// fields are required.
type Config struct {
	// BaseURL is prepended verbatim to every endpoint path, e.g.
	// "https://verify.example.com". Do not add a trailing slash: the
	// endpoint paths already start with one and no normalization is
	// performed.
	BaseURL string
	// APIKey authenticates the caller via the Api-Key header.
	APIKey string
	// AppName identifies the calling application via the X-App header.
	AppName string
}

// clientConfig holds optional configuration applied by Options.
type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     logrus.FieldLogger
	clientIP   string
}

// Option configures the client.
type Option func(*clientConfig)

// WithHTTPClient sets a custom HTTP client. Timeout and cancellation
// behavior of the supplied client apply unchanged; the SDK adds none of
// its own.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP timeout used when no custom HTTP client is
// supplied. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets a logger for transport failure diagnostics. Failures
// are logged at debug level before being returned, never swallowed.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithClientIP sets the initial X-Client-IP header value, replacing the
// "none" sentinel. Equivalent to calling SetClientIP after New.
func WithClientIP(ip string) Option {
	return func(c *clientConfig) {
		c.clientIP = ip
	}
}
