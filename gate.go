package slidegate

import (
	"context"
	"fmt"
)

// InboundRequest is the minimal surface a web framework must expose for
// the captcha gates: header lookup and JSON body decoding. Adapters for
// concrete frameworks live outside the core package (see ginadapter).
//
// DecodeBody must be repeatable or buffered on the adapter side when
// downstream handlers also need the request body.
type InboundRequest interface {
	Header(name string) string
	DecodeBody(v any) error
}

// gateBody is the captcha answer carried by gated inbound requests.
type gateBody struct {
	CaptchaKey string `json:"captchaKey"`
	Value      string `json:"value"`
}

// clientIPFromRequest extracts the end user's IP from the usual proxy
// headers. Empty when neither header is set.
func clientIPFromRequest(req InboundRequest) string {
	if ip := req.Header("X-Real-IP"); ip != "" {
		return ip
	}
	return req.Header("X-Forwarded-For")
}

// GateCheck reads a captcha answer from an inbound request and checks it
// without consuming the challenge. The end user's IP, when present in
// the request headers, becomes the client IP for this and subsequent
// calls. Intended for pre-validation middleware that rejects a request
// pipeline before the challenge is spent.
func (c *Client) GateCheck(ctx context.Context, req InboundRequest) (bool, error) {
	if ip := clientIPFromRequest(req); ip != "" {
		c.SetClientIP(ip)
	}

	var body gateBody
	if err := req.DecodeBody(&body); err != nil {
		return false, fmt.Errorf("decode captcha answer: %w", err)
	}

	return c.CheckCaptcha(ctx, body.CaptchaKey, body.Value)
}

// GateVerify reads a captcha answer from an inbound request, verifies it
// and consumes the challenge. The result is returned for the adapter to
// attach to its request-scoped context for downstream handlers.
func (c *Client) GateVerify(ctx context.Context, req InboundRequest) (*VerifyResult, error) {
	if ip := clientIPFromRequest(req); ip != "" {
		c.SetClientIP(ip)
	}

	var body gateBody
	if err := req.DecodeBody(&body); err != nil {
		return nil, fmt.Errorf("decode captcha answer: %w", err)
	}

	return c.VerifyCaptcha(ctx, body.CaptchaKey, body.Value)
}
