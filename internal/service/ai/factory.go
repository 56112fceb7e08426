package ai

import (
	"context"
	"log/slog"

	"github.com/thrivelog/thrivelog/internal/config"
)

// NewProvider creates a text provider based on configuration. A missing API key
// yields the disabled provider rather than an error.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	if !cfg.AIEnabled() {
		slog.Warn("GEMINI_API_KEY not set, AI features will use static fallbacks")
		return NewDisabledProvider(), nil
	}

	slog.Info("initializing ai provider", "provider", "gemini", "model", cfg.GeminiModel)
	return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITimeout, cfg.AIMaxRetries)
}
