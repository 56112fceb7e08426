package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"
)

// Retry runs operation with exponential backoff, at most maxRetries extra times.
// Errors wrapped with backoff.Permanent stop immediately.
func Retry(ctx context.Context, maxRetries uint64, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(b, maxRetries), ctx))
}

// Reason explains why a call failed, for user-facing fallback notes.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonNotConfigured   Reason = "not_configured"
	ReasonRateLimited     Reason = "rate_limited"
	ReasonQuota           Reason = "quota"
	ReasonInvalidResponse Reason = "invalid_response"
	ReasonUnavailable     Reason = "unavailable"
)

// Classify maps a provider error to a Reason.
func Classify(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	if errors.Is(err, ErrNotConfigured) {
		return ReasonNotConfigured
	}
	if errors.Is(err, ErrInvalidResponse) || errors.Is(err, ErrEmptyResponse) {
		return ReasonInvalidResponse
	}

	msg := strings.ToLower(err.Error())
	switch code := statusCode(err); {
	case strings.Contains(msg, "quota"):
		return ReasonQuota
	case code == http.StatusTooManyRequests, strings.Contains(msg, "rate limit"), strings.Contains(msg, "429"):
		return ReasonRateLimited
	case code == http.StatusUnauthorized, code == http.StatusForbidden, strings.Contains(msg, "api key"):
		return ReasonNotConfigured
	}
	return ReasonUnavailable
}

// Retryable reports whether err is worth another attempt: rate limits, server
// errors and timeouts. Quota exhaustion and bad credentials are not.
func Retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	switch Classify(err) {
	case ReasonRateLimited:
		return true
	case ReasonUnavailable:
		code := statusCode(err)
		return code == 0 || code >= 500
	}
	return false
}

// Note is the message shown alongside fallback content.
func Note(reason Reason) string {
	switch reason {
	case ReasonRateLimited:
		return "AI service is currently busy. Showing personality-based recommendations instead."
	case ReasonNotConfigured:
		return "AI service not configured. Showing personality-based recommendations."
	case ReasonQuota:
		return "AI service quota exceeded. Showing personality-based recommendations."
	default:
		return "AI recommendations temporarily unavailable. Showing personality-based suggestions."
	}
}

// InsightsNote is Note for personality insights.
func InsightsNote(reason Reason) string {
	switch reason {
	case ReasonRateLimited:
		return "AI service is currently busy. Using personality-based insights instead."
	case ReasonNotConfigured:
		return "AI service not configured. Using personality-based insights."
	case ReasonQuota:
		return "AI service quota exceeded. Using personality-based insights."
	default:
		return "AI insights temporarily unavailable. Using personality-based insights."
	}
}

func statusCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code
	}
	return 0
}
