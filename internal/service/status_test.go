package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thrivelog/thrivelog/internal/service/ai"
)

func TestAIStatus(t *testing.T) {
	cases := []struct {
		name     string
		provider ai.Provider
		want     string
	}{
		{"disabled", ai.NewDisabledProvider(), AIStatusNotConfigured},
		{"working", &fakeProvider{text: "Hello"}, AIStatusWorking},
		{"rate limited", &fakeProvider{err: errors.New("Error 429: Too Many Requests")}, AIStatusRateLimited},
		{"bad key", &fakeProvider{err: errors.New("API key not valid")}, AIStatusError},
		{"down", &fakeProvider{err: errUnavailable}, AIStatusError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status := NewStatusService(tc.provider).AIStatus(context.Background())
			assert.Equal(t, tc.want, status.Status)
			assert.Equal(t, tc.provider.Name(), status.Provider)
			assert.NotEmpty(t, status.Message)
		})
	}
}
