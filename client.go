package slidegate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slidegate/client-go/internal/api"
)

// Client is the SlideGate verification client. Every method issues a
// single request/response round trip: no retries, no caching, no rate
// limiting. Clients are safe for concurrent use; the client IP is the
// only mutable state and is last-writer-wins.
type Client struct {
	api *api.Client
}

// New creates a new SlideGate client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if cfg.AppName == "" {
		return nil, ErrMissingAppName
	}

	cc := &clientConfig{}
	for _, opt := range opts {
		opt(cc)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		AppName:    cfg.AppName,
		ClientIP:   cc.clientIP,
		HTTPClient: cc.httpClient,
		Timeout:    cc.timeout,
		Logger:     cc.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{api: apiClient}, nil
}

// SetClientIP updates the X-Client-IP header used on every subsequent
// call. The value is per-client state, not per-call: when requests for
// different end users share one client, set the IP immediately before
// each IP-sensitive call or use separate clients.
func (c *Client) SetClientIP(ip string) {
	c.api.SetClientIP(ip)
}

// ClientIP returns the current X-Client-IP header value.
func (c *Client) ClientIP() string {
	return c.api.ClientIP()
}

// GenerateCaptcha requests a new slider captcha challenge. All challenge
// fields are returned exactly as produced by the service.
func (c *Client) GenerateCaptcha(ctx context.Context) (*CaptchaChallenge, error) {
	env, err := c.api.GenerateCaptcha(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	var challenge CaptchaChallenge
	if err := decodeData(env, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

// CheckCaptcha reports whether value solves the challenge identified by
// captchaKey without consuming it. Value is the "X,Y" drop offset; its
// format is not validated locally. A null or absent data payload counts
// as a failed check.
func (c *Client) CheckCaptcha(ctx context.Context, captchaKey, value string) (bool, error) {
	env, err := c.api.CheckCaptcha(ctx, captchaKey, value)
	if err != nil {
		return false, wrapError(err)
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return false, nil
	}
	var ok bool
	if err := json.Unmarshal(env.Data, &ok); err != nil {
		return false, fmt.Errorf("%w: captcha check data %q is not a boolean", ErrUnexpectedResponse, env.Data)
	}
	return ok, nil
}

// VerifyCaptcha verifies and consumes the challenge identified by
// captchaKey. Once verified, the same key cannot be verified again.
func (c *Client) VerifyCaptcha(ctx context.Context, captchaKey, value string) (*VerifyResult, error) {
	env, err := c.api.VerifyCaptcha(ctx, captchaKey, value)
	if err != nil {
		return nil, wrapError(err)
	}
	return &VerifyResult{Code: env.Code, Message: env.Message}, nil
}

// SendSMSWithCaptcha sends an OTP SMS to p.Phone, gated behind the
// captcha answer in p.CaptchaKey/p.Value.
func (c *Client) SendSMSWithCaptcha(ctx context.Context, p SendSMSParams) (*SendSMSResult, error) {
	env, err := c.api.SendSMSWithCaptcha(ctx, p.CaptchaKey, p.Value, p.Phone, p.Code)
	if err != nil {
		return nil, wrapError(err)
	}

	var result SendSMSResult
	if err := decodeData(env, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VerifySMS verifies an OTP code previously sent to phone.
func (c *Client) VerifySMS(ctx context.Context, phone, code string) (*VerifyResult, error) {
	env, err := c.api.VerifySMS(ctx, phone, code)
	if err != nil {
		return nil, wrapError(err)
	}
	return &VerifyResult{Code: env.Code, Message: env.Message}, nil
}

// ClearIPRateLimit clears the SMS rate limit for the current client IP.
func (c *Client) ClearIPRateLimit(ctx context.Context) (*ClearIPResult, error) {
	env, err := c.api.ClearIPRateLimit(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	var result ClearIPResult
	if err := decodeData(env, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ClearPhoneRateLimit clears the SMS rate limit for a phone number. The
// number is URL-encoded into the request query string.
func (c *Client) ClearPhoneRateLimit(ctx context.Context, phone string) (*ClearPhoneResult, error) {
	env, err := c.api.ClearPhoneRateLimit(ctx, phone)
	if err != nil {
		return nil, wrapError(err)
	}

	var result ClearPhoneResult
	if err := decodeData(env, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// decodeData decodes a success envelope's data payload into v. An empty
// or null payload is an unexpected-response condition for operations
// that require one.
func decodeData(env *Envelope, v any) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: envelope has no data payload", ErrUnexpectedResponse)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return nil
}
