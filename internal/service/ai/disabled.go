package ai

import "context"

// DisabledProvider is used when no API key is configured. Every call fails with
// ErrNotConfigured so callers fall back to static content.
type DisabledProvider struct{}

func NewDisabledProvider() *DisabledProvider {
	return &DisabledProvider{}
}

func (p *DisabledProvider) GenerateText(ctx context.Context, prompt string, opts Options) (string, error) {
	return "", ErrNotConfigured
}

func (p *DisabledProvider) GenerateJSON(ctx context.Context, prompt string, out any) error {
	return ErrNotConfigured
}

func (p *DisabledProvider) Name() string {
	return "disabled"
}
