package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements core.Cache on top of a redis client
type RedisCache struct {
	client *redis.Client
	logger coreport.Logger
}

// NewRedisCache connects to redis and verifies the connection with a ping
func NewRedisCache(ctx context.Context, conf config.RedisConfig, logger coreport.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", conf.Addr, err)
	}

	logger.Info("Connected to redis", map[string]any{"addr": conf.Addr, "db": conf.DB})
	return &RedisCache{client: client, logger: logger}, nil
}

// Get returns the cached bytes for key, or ok=false on a miss
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set stores value under key for ttl
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes key
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Ping checks that redis is reachable
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client's connections
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ coreport.Cache = (*RedisCache)(nil)
