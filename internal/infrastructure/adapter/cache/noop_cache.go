package cache

import (
	"context"
	"time"

	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
)

// NoopCache never stores anything; every Get is a miss
type NoopCache struct{}

// NewNoopCache creates a cache that is always empty
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) { return nil, false, nil }

func (NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, key string) error { return nil }

var _ coreport.Cache = (*NoopCache)(nil)
