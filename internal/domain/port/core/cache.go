package core

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with expirations.
// Implementations must treat a missing key as (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
