package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/mensunw/people-bets/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("PB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("PB_TEST_REDIS_ADDR not set, skipping redis test")
	}

	ctx := context.Background()
	c, err := NewRedisCache(ctx, config.RedisConfig{Addr: addr}, logger.NewNoopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	key := "stats:" + uuid.NewString() + ":30"

	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, key, []byte(`{"totalBets":3}`), time.Minute))
	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"totalBets":3}`, string(got))

	require.NoError(t, c.Delete(ctx, key))
	_, ok, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := NewRedisCache(ctx, config.RedisConfig{Addr: "127.0.0.1:1"}, logger.NewNoopLogger())
	assert.Error(t, err)
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopCache()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Delete(ctx, "k"))
}
