package slidegate

import (
	"fmt"

	"github.com/slidegate/client-go/internal/api"
)

// Envelope is the uniform JSON wrapper returned by every endpoint.
type Envelope = api.Envelope

// CaptchaChallenge is a slider captcha challenge produced by
// GenerateCaptcha. Image is the background puzzle and Thumb the
// draggable piece, both base64-encoded. The challenge is redeemed via
// its CaptchaKey plus an "X,Y" drop offset.
type CaptchaChallenge = api.CaptchaChallenge

// SendSMSResult is the result of SendSMSWithCaptcha.
type SendSMSResult = api.SendSMSResult

// ClearIPResult is the result of ClearIPRateLimit.
type ClearIPResult = api.ClearIPResult

// ClearPhoneResult is the result of ClearPhoneRateLimit.
type ClearPhoneResult = api.ClearPhoneResult

// VerifyResult is the service's acknowledgement for VerifyCaptcha and
// VerifySMS.
type VerifyResult struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendSMSParams are the inputs to SendSMSWithCaptcha. CaptchaKey and
// Value redeem an unconsumed challenge; Code selects the SMS purpose on
// the service side.
type SendSMSParams struct {
	CaptchaKey string
	Value      string
	Phone      string
	Code       string
}

// Point is a slider drop position in pixels.
type Point struct {
	X int
	Y int
}

// String formats the point as the "X,Y" value expected by the check and
// verify endpoints.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
