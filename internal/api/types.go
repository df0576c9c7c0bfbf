package api

import "encoding/json"

// Envelope is the uniform JSON wrapper returned by every SlideGate
// endpoint, success or failure. Data carries the endpoint-specific
// payload and is decoded by the caller.
type Envelope struct {
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// CaptchaChallenge represents the payload of /api/v1/captcha/generate.
// Image and Thumb are base64-encoded PNG data URIs produced by the server.
type CaptchaChallenge struct {
	CaptchaKey   string `json:"captcha_key"`
	Image        string `json:"image"`
	Thumb        string `json:"thumb"`
	ThumbX       int    `json:"thumbX"`
	ThumbY       int    `json:"thumbY"`
	ThumbWidth   int    `json:"thumbWidth"`
	ThumbHeight  int    `json:"thumbHeight"`
	MasterWidth  int    `json:"master_width"`
	MasterHeight int    `json:"master_height"`
	ID           string `json:"id"`
}

// captchaAnswerRequest is the body for the check and verify endpoints.
// Value is the "X,Y" pixel offset where the slider was dropped.
type captchaAnswerRequest struct {
	CaptchaKey string `json:"captchaKey"`
	Value      string `json:"value"`
}

// sendSMSRequest is the body for /api/v1/sms/send-with-captcha.
type sendSMSRequest struct {
	CaptchaKey string `json:"captchaKey"`
	Value      string `json:"value"`
	Phone      string `json:"phone"`
	Code       string `json:"code"`
}

// verifySMSRequest is the body for /api/v1/sms/verify.
type verifySMSRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// SendSMSResult represents the payload of /api/v1/sms/send-with-captcha.
type SendSMSResult struct {
	MsgID string `json:"msg_id"`
}

// ClearIPResult represents the payload of /api/v1/sms/clearip.
type ClearIPResult struct {
	Message string `json:"message"`
	IP      string `json:"ip"`
}

// ClearPhoneResult represents the payload of /api/v1/sms/clear.
type ClearPhoneResult struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
}
