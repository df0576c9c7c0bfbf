// Package ginadapter provides gin middleware over the slidegate client:
// captcha gates for protecting routes and a request-ID middleware for
// correlating gate decisions in logs.
package ginadapter

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	slidegate "github.com/slidegate/client-go"
)

// VerificationKey is the gin context key under which RequireCaptchaVerify
// stores the *slidegate.VerifyResult for downstream handlers.
const VerificationKey = "slidegate.verification"

// ginRequest adapts gin.Context to slidegate.InboundRequest. The body is
// bound with ShouldBindBodyWith so downstream handlers can re-read it.
type ginRequest struct {
	c *gin.Context
}

func (r ginRequest) Header(name string) string {
	return r.c.GetHeader(name)
}

func (r ginRequest) DecodeBody(v any) error {
	return r.c.ShouldBindBodyWith(v, binding.JSON)
}

// RequireCaptchaCheck rejects the request unless its body carries a
// captcha answer that passes a non-consuming check. The challenge stays
// redeemable, so a later handler can still verify it.
func RequireCaptchaCheck(client *slidegate.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := client.GateCheck(c.Request.Context(), ginRequest{c})
		if err != nil {
			abortWithGateError(c, err)
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "403",
				"data":    nil,
				"error":   "CAPTCHA_REJECTED",
				"message": "captcha check failed",
			})
			return
		}
		c.Next()
	}
}

// RequireCaptchaVerify verifies and consumes the captcha answer in the
// request body, storing the verification result under VerificationKey.
func RequireCaptchaVerify(client *slidegate.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := client.GateVerify(c.Request.Context(), ginRequest{c})
		if err != nil {
			abortWithGateError(c, err)
			return
		}
		c.Set(VerificationKey, result)
		c.Next()
	}
}

// Verification returns the result stored by RequireCaptchaVerify.
func Verification(c *gin.Context) (*slidegate.VerifyResult, bool) {
	v, exists := c.Get(VerificationKey)
	if !exists {
		return nil, false
	}
	result, ok := v.(*slidegate.VerifyResult)
	return result, ok
}

// RequestID assigns each request a unique ID, honoring an inbound
// X-Request-ID header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// abortWithGateError short-circuits with an envelope-shaped JSON body.
// Service errors pass the service's own code and message through;
// transport and decode failures get a generic message since their
// details are not safe to show.
func abortWithGateError(c *gin.Context, err error) {
	var svcErr *slidegate.ServiceError
	if errors.As(err, &svcErr) {
		c.AbortWithStatusJSON(svcErr.StatusCode, gin.H{
			"code":    svcErr.Code,
			"data":    nil,
			"error":   svcErr.ErrorCode,
			"message": svcErr.Message,
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
		"code":    "502",
		"data":    nil,
		"error":   "VERIFICATION_UNAVAILABLE",
		"message": "captcha verification is unavailable",
	})
}
