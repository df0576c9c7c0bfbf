package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// DefaultClientIP is the X-Client-IP value sent until SetClientIP is called.
const DefaultClientIP = "none"

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Config configures the API client.
type Config struct {
	// BaseURL is prepended verbatim to every endpoint path. No slash
	// normalization is performed: supply a URL without a trailing slash,
	// since every endpoint path starts with one.
	BaseURL string
	// APIKey is sent in the Api-Key header on every request.
	APIKey string
	// AppName is sent in the X-App header on every request.
	AppName string
	// ClientIP seeds the X-Client-IP header. Defaults to DefaultClientIP.
	ClientIP string
	// HTTPClient optionally replaces the underlying transport.
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is not supplied.
	Timeout time.Duration
	// Logger receives diagnostic records for transport failures before
	// they are returned. Failures are never swallowed. Optional.
	Logger logrus.FieldLogger
}

// Client is the HTTP API client. It is safe for concurrent use; the
// only mutable state is the client IP, which is last-writer-wins.
type Client struct {
	rc      *resty.Client
	baseURL string
	apiKey  string
	appName string
	logger  logrus.FieldLogger

	mu       sync.RWMutex
	clientIP string
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if cfg.AppName == "" {
		return nil, ErrMissingAppName
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		rc.SetTimeout(timeout)
	}

	clientIP := cfg.ClientIP
	if clientIP == "" {
		clientIP = DefaultClientIP
	}

	return &Client{
		rc:       rc,
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		appName:  cfg.AppName,
		clientIP: clientIP,
		logger:   cfg.Logger,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetClientIP updates the X-Client-IP header sent on all subsequent
// requests. The value is per-client, not per-call: concurrent writers
// race and the last one wins.
func (c *Client) SetClientIP(ip string) {
	c.mu.Lock()
	c.clientIP = ip
	c.mu.Unlock()
}

// ClientIP returns the current X-Client-IP header value.
func (c *Client) ClientIP() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientIP
}

// Do issues a single request and normalizes the response. The envelope
// is parsed from the body regardless of HTTP status: a non-2xx status
// with a parseable envelope becomes an *APIError carrying the envelope
// verbatim, while a network failure or unparseable body becomes a
// *NetworkError wrapping the original cause. No retries are attempted;
// cancellation is controlled entirely by ctx.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*Envelope, error) {
	fullURL := c.baseURL + path

	req := c.rc.R().
		SetContext(ctx).
		SetHeaders(map[string]string{
			"Api-Key":      c.apiKey,
			"X-Client-IP":  c.ClientIP(),
			"X-App":        c.appName,
			"Content-Type": "application/json",
		})
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, fullURL)
	if err != nil {
		c.logTransportFailure(fullURL, err)
		return nil, &NetworkError{Err: err, URL: fullURL}
	}

	var env Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		c.logTransportFailure(fullURL, err)
		return nil, &NetworkError{Err: err, URL: fullURL}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode(), Envelope: env}
	}

	return &env, nil
}

func (c *Client) logTransportFailure(url string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"url":   url,
		"error": err,
	}).Debug("slidegate transport failure")
}
