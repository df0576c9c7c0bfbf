package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// capturedRequest records what the mock service received.
type capturedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
}

func newEndpointTestClient(t *testing.T, respond func(w http.ResponseWriter)) (*Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.RawQuery = r.URL.RawQuery
		body, _ := io.ReadAll(r.Body)
		captured.Body = string(body)
		respond(w)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, APIKey: "test-key", AppName: "test-app"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client, captured
}

func respondOK(w http.ResponseWriter) {
	json.NewEncoder(w).Encode(Envelope{Code: "0", Message: "ok"})
}

func TestGenerateCaptcha_Request(t *testing.T) {
	client, captured := newEndpointTestClient(t, respondOK)

	if _, err := client.GenerateCaptcha(context.Background()); err != nil {
		t.Fatalf("GenerateCaptcha() error = %v", err)
	}
	if captured.Method != "GET" || captured.Path != "/api/v1/captcha/generate" {
		t.Errorf("request = %s %s, want GET /api/v1/captcha/generate", captured.Method, captured.Path)
	}
	if captured.Body != "" {
		t.Errorf("body = %q, want empty", captured.Body)
	}
}

func TestCheckCaptcha_Request(t *testing.T) {
	client, captured := newEndpointTestClient(t, respondOK)

	if _, err := client.CheckCaptcha(context.Background(), "key-1", "179,76"); err != nil {
		t.Fatalf("CheckCaptcha() error = %v", err)
	}
	if captured.Method != "POST" || captured.Path != "/api/v1/captcha/check" {
		t.Errorf("request = %s %s, want POST /api/v1/captcha/check", captured.Method, captured.Path)
	}

	var body map[string]string
	if err := json.Unmarshal([]byte(captured.Body), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["captchaKey"] != "key-1" || body["value"] != "179,76" {
		t.Errorf("body = %v, want captchaKey=key-1 value=179,76", body)
	}
}

func TestVerifyCaptcha_Request(t *testing.T) {
	client, captured := newEndpointTestClient(t, respondOK)

	if _, err := client.VerifyCaptcha(context.Background(), "key-1", "179,76"); err != nil {
		t.Fatalf("VerifyCaptcha() error = %v", err)
	}
	if captured.Method != "POST" || captured.Path != "/api/v1/captcha/verify" {
		t.Errorf("request = %s %s, want POST /api/v1/captcha/verify", captured.Method, captured.Path)
	}
}

func TestSendSMSWithCaptcha_Request(t *testing.T) {
	client, captured := newEndpointTestClient(t, respondOK)

	if _, err := client.SendSMSWithCaptcha(context.Background(), "key-1", "179,76", "+15550100", "login"); err != nil {
		t.Fatalf("SendSMSWithCaptcha() error = %v", err)
	}
	if captured.Method != "POST" || captured.Path != "/api/v1/sms/send-with-captcha" {
		t.Errorf("request = %s %s, want POST /api/v1/sms/send-with-captcha", captured.Method, captured.Path)
	}

	var body map[string]string
	if err := json.Unmarshal([]byte(captured.Body), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	want := map[string]string{"captchaKey": "key-1", "value": "179,76", "phone": "+15550100", "code": "login"}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("body[%q] = %q, want %q", k, body[k], v)
		}
	}
}

func TestVerifySMS_Request(t *testing.T) {
	client, captured := newEndpointTestClient(t, respondOK)

	if _, err := client.VerifySMS(context.Background(), "+15550100", "123456"); err != nil {
		t.Fatalf("VerifySMS() error = %v", err)
	}
	if captured.Method != "POST" || captured.Path != "/api/v1/sms/verify" {
		t.Errorf("request = %s %s, want POST /api/v1/sms/verify", captured.Method, captured.Path)
	}

	var body map[string]string
	if err := json.Unmarshal([]byte(captured.Body), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["phone"] != "+15550100" || body["code"] != "123456" {
		t.Errorf("body = %v, want phone=+15550100 code=123456", body)
	}
}

func TestClearIPRateLimit_Request(t *testing.T) {
	client, captured := newEndpointTestClient(t, respondOK)

	if _, err := client.ClearIPRateLimit(context.Background()); err != nil {
		t.Fatalf("ClearIPRateLimit() error = %v", err)
	}
	if captured.Method != "GET" || captured.Path != "/api/v1/sms/clearip" {
		t.Errorf("request = %s %s, want GET /api/v1/sms/clearip", captured.Method, captured.Path)
	}
}

func TestClearPhoneRateLimit_EncodesPhone(t *testing.T) {
	client, captured := newEndpointTestClient(t, respondOK)

	if _, err := client.ClearPhoneRateLimit(context.Background(), "+1 555 0100"); err != nil {
		t.Fatalf("ClearPhoneRateLimit() error = %v", err)
	}
	if captured.Method != "GET" || captured.Path != "/api/v1/sms/clear" {
		t.Errorf("request = %s %s, want GET /api/v1/sms/clear", captured.Method, captured.Path)
	}
	// Plus must become %2B and spaces must be escaped, or the service
	// would clear the wrong number.
	if captured.RawQuery != "phone=%2B1+555+0100" {
		t.Errorf("query = %q, want phone=%%2B1+555+0100", captured.RawQuery)
	}
}
