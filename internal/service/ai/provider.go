// Package ai wraps the generative text provider used for journal analysis,
// prompts and recommendations.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotConfigured   = errors.New("ai provider not configured")
	ErrInvalidResponse = errors.New("ai provider returned an invalid response")
	ErrEmptyResponse   = errors.New("ai provider returned an empty response")
)

// Options tune a single generation call.
type Options struct {
	Temperature     float32
	MaxOutputTokens int32
	JSON            bool
}

var (
	TextOptions       = Options{Temperature: 0.7, MaxOutputTokens: 1000}
	JSONOptions       = Options{Temperature: 0.3, MaxOutputTokens: 1000, JSON: true}
	CreativeOptions   = Options{Temperature: 0.9, MaxOutputTokens: 1500}
	AnalyticalOptions = Options{Temperature: 0.2, MaxOutputTokens: 800}
	PromptOptions     = Options{Temperature: 0.8, MaxOutputTokens: 200}
)

// Provider defines the interface that all text generation backends must implement
type Provider interface {
	// GenerateText returns the trimmed model output for prompt.
	GenerateText(ctx context.Context, prompt string, opts Options) (string, error)

	// GenerateJSON asks for a JSON object and decodes it into out.
	GenerateJSON(ctx context.Context, prompt string, out any) error

	// Name returns the provider name (e.g., "gemini", "disabled")
	Name() string
}

const jsonSuffix = "\n\nReturn ONLY a valid JSON object, no additional text."

// generateJSON is the shared GenerateJSON implementation on top of GenerateText.
func generateJSON(ctx context.Context, p Provider, prompt string, out any) error {
	text, err := p.GenerateText(ctx, prompt+jsonSuffix, JSONOptions)
	if err != nil {
		return err
	}
	return DecodeJSON(text, out)
}

// DecodeJSON decodes model output into out, tolerating Markdown code fences and
// prose around the object.
func DecodeJSON(text string, out any) error {
	cleaned := StripFences(text)
	if cleaned == "" {
		return ErrEmptyResponse
	}

	err := json.Unmarshal([]byte(cleaned), out)
	if err == nil {
		return nil
	}

	start := strings.IndexAny(cleaned, "{[")
	end := strings.LastIndexAny(cleaned, "}]")
	if start >= 0 && end > start {
		if json.Unmarshal([]byte(cleaned[start:end+1]), out) == nil {
			return nil
		}
	}

	return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
}

// StripFences removes a surrounding ``` or ```json fence.
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		lang := strings.TrimSpace(s[:nl])
		if lang == "" || !strings.ContainsAny(lang, "{[\"") {
			s = s[nl+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
