// Package cache stores JSON-encoded values with a TTL.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get decodes the value for key into out. A miss returns false and no error.
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Close() error
}

// Noop never stores anything. It is used when no cache is configured.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string, out any) (bool, error) {
	return false, nil
}

func (Noop) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
