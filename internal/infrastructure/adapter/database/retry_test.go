package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func fastRetry(n int) RetryConfig {
	return RetryConfig{MaxRetries: n, RetryInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}
}

func TestRetryOnConnectionError_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := RetryOnConnectionError(context.Background(), fastRetry(3), func() error {
		calls++
		if calls < 3 {
			return errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
		}
		return nil
	}, logger.NewNoopLogger())

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryOnConnectionError_GivesUp(t *testing.T) {
	calls := 0
	err := RetryOnConnectionError(context.Background(), fastRetry(2), func() error {
		calls++
		return errors.New("connection refused")
	}, logger.NewNoopLogger())

	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryOnConnectionError_DoesNotRetryOtherErrors(t *testing.T) {
	calls := 0
	err := RetryOnConnectionError(context.Background(), fastRetry(5), func() error {
		calls++
		return errors.New(`password authentication failed for user "bets"`)
	}, logger.NewNoopLogger())

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryOnConnectionError_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := RetryConfig{MaxRetries: 3, RetryInterval: time.Second, MaxInterval: time.Second}
	err := RetryOnConnectionError(ctx, cfg, func() error {
		return errors.New("connection refused")
	}, logger.NewNoopLogger())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(10, cfg))

	cfg.JitterFactor = 0.5
	got := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, got, 100*time.Millisecond)
	assert.LessOrEqual(t, got, 150*time.Millisecond)
}
