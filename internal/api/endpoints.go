package api

import (
	"context"
	"net/http"
	"net/url"
)

// GenerateCaptcha requests a new slider captcha challenge.
func (c *Client) GenerateCaptcha(ctx context.Context) (*Envelope, error) {
	return c.Do(ctx, http.MethodGet, "/api/v1/captcha/generate", nil, nil)
}

// CheckCaptcha asks the service whether value solves the challenge
// without consuming it. Value is the "X,Y" slider drop offset; the
// service is the sole arbiter of its format.
func (c *Client) CheckCaptcha(ctx context.Context, captchaKey, value string) (*Envelope, error) {
	body := captchaAnswerRequest{CaptchaKey: captchaKey, Value: value}
	return c.Do(ctx, http.MethodPost, "/api/v1/captcha/check", nil, body)
}

// VerifyCaptcha verifies and consumes the challenge. After a successful
// verify the captcha key cannot be verified again.
func (c *Client) VerifyCaptcha(ctx context.Context, captchaKey, value string) (*Envelope, error) {
	body := captchaAnswerRequest{CaptchaKey: captchaKey, Value: value}
	return c.Do(ctx, http.MethodPost, "/api/v1/captcha/verify", nil, body)
}

// SendSMSWithCaptcha sends an OTP SMS gated behind a captcha answer.
func (c *Client) SendSMSWithCaptcha(ctx context.Context, captchaKey, value, phone, code string) (*Envelope, error) {
	body := sendSMSRequest{CaptchaKey: captchaKey, Value: value, Phone: phone, Code: code}
	return c.Do(ctx, http.MethodPost, "/api/v1/sms/send-with-captcha", nil, body)
}

// VerifySMS verifies an OTP code previously sent to phone.
func (c *Client) VerifySMS(ctx context.Context, phone, code string) (*Envelope, error) {
	body := verifySMSRequest{Phone: phone, Code: code}
	return c.Do(ctx, http.MethodPost, "/api/v1/sms/verify", nil, body)
}

// ClearIPRateLimit clears the SMS rate limit for the current client IP.
func (c *Client) ClearIPRateLimit(ctx context.Context) (*Envelope, error) {
	return c.Do(ctx, http.MethodGet, "/api/v1/sms/clearip", nil, nil)
}

// ClearPhoneRateLimit clears the SMS rate limit for a phone number.
// The number is URL-encoded into the query string.
func (c *Client) ClearPhoneRateLimit(ctx context.Context, phone string) (*Envelope, error) {
	query := url.Values{"phone": {phone}}
	return c.Do(ctx, http.MethodGet, "/api/v1/sms/clear", query, nil)
}
