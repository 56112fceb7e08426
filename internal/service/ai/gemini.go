package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"
)

type GeminiProvider struct {
	client     *genai.Client
	model      string
	timeout    time.Duration
	maxRetries uint64
}

func NewGeminiProvider(ctx context.Context, apiKey, model string, timeout time.Duration, maxRetries int) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiProvider{
		client:     client,
		model:      model,
		timeout:    timeout,
		maxRetries: uint64(max(maxRetries, 0)),
	}, nil
}

func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string, opts Options) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		MaxOutputTokens: opts.MaxOutputTokens,
	}
	if opts.JSON {
		config.ResponseMIMEType = "application/json"
	}

	var text string
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		resp, err := p.client.Models.GenerateContent(callCtx, p.model, genai.Text(prompt), config)
		if err != nil {
			if Retryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}

		text = strings.TrimSpace(resp.Text())
		if text == "" {
			return backoff.Permanent(ErrEmptyResponse)
		}
		return nil
	}

	err := Retry(ctx, p.maxRetries, operation)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return text, nil
}

func (p *GeminiProvider) GenerateJSON(ctx context.Context, prompt string, out any) error {
	return generateJSON(ctx, p, prompt, out)
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}
