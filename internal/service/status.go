package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/thrivelog/thrivelog/internal/service/ai"
)

const (
	AIStatusNotConfigured = "not_configured"
	AIStatusWorking       = "working"
	AIStatusRateLimited   = "rate_limited"
	AIStatusError         = "api_error"

	statusProbeTimeout = 15 * time.Second
)

type AIStatus struct {
	Status       string `json:"status"`
	Provider     string `json:"provider"`
	Message      string `json:"message"`
	TestResponse string `json:"test_response,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

type StatusService struct {
	provider ai.Provider
}

func NewStatusService(provider ai.Provider) *StatusService {
	return &StatusService{
		provider: provider,
	}
}

// AIStatus probes the provider with a tiny prompt.
func (s *StatusService) AIStatus(ctx context.Context) AIStatus {
	status := AIStatus{Provider: s.provider.Name()}

	ctx, cancel := context.WithTimeout(ctx, statusProbeTimeout)
	defer cancel()

	text, err := s.provider.GenerateText(ctx, `Say "Hello" in one word.`, ai.Options{Temperature: 0.7, MaxOutputTokens: 10})
	if err == nil {
		status.Status = AIStatusWorking
		status.Message = "AI provider is working correctly"
		status.TestResponse = text
		return status
	}

	reason := ai.Classify(err)
	status.Reason = string(reason)

	switch reason {
	case ai.ReasonNotConfigured:
		if s.provider.Name() == "disabled" {
			status.Status = AIStatusNotConfigured
			status.Message = "GEMINI_API_KEY is not set"
			return status
		}
		status.Status = AIStatusError
		status.Message = "AI provider rejected the API key"
	case ai.ReasonRateLimited:
		status.Status = AIStatusRateLimited
		status.Message = "AI provider rate limit exceeded"
	default:
		status.Status = AIStatusError
		status.Message = "AI provider is configured but the call failed"
	}

	slog.Warn("ai status probe failed", "error", err, "reason", reason, "provider", status.Provider)
	return status
}
