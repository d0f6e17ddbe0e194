package stats

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	"github.com/mensunw/people-bets/internal/domain/usecase/usecasetest"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapCache is a Cache that ignores expirations
type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *mapCache) has(key string) bool {
	_, ok, _ := c.Get(context.Background(), key)
	return ok
}

func TestCacheInvalidator(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	cache := newMapCache()
	uc := NewStatsUseCase(store, cache, time.Minute, usecasetest.NewClock(now).TimeProvider(t), logger.NewNoopLogger())
	next, events := usecasetest.Publisher(t)
	inv := NewCacheInvalidator(next, uc)

	before, err := uc.GetUserStats(ctx, userB, 30)
	require.NoError(t, err)
	require.Equal(t, 1, before.Stats.OverallStats.TotalBets)
	_, err = uc.GetUserStats(ctx, userA, 30)
	require.NoError(t, err)

	stake, err := entity.NewStake("p-open", userB, entity.SideOver, 25, now)
	require.NoError(t, err)
	require.NoError(t, store.GetStakeRepository(ctx).Create(ctx, stake))

	cached, err := uc.GetUserStats(ctx, userB, 30)
	require.NoError(t, err)
	assert.Equal(t, before.ETag, cached.ETag)

	t.Run("Stake placed retires the staker's stats", func(t *testing.T) {
		require.NoError(t, inv.Publish(ctx, entity.NewDomainEvent(entity.EventStakePlaced, "p-open", userB, nil, now)))

		after, err := uc.GetUserStats(ctx, userB, 30)
		require.NoError(t, err)
		assert.Equal(t, 2, after.Stats.OverallStats.TotalBets)
		assert.NotEqual(t, before.ETag, after.ETag)
		assert.True(t, cache.has("stats:"+userA+":gen"))
	})

	t.Run("Resolution retires every staker's stats", func(t *testing.T) {
		require.NoError(t, inv.Publish(ctx, entity.NewDomainEvent(entity.EventPropositionResolved, "p-open", creatorID, map[string]any{
			"stakers": []string{userA, userB},
		}, now)))

		assert.False(t, cache.has("stats:"+userA+":gen"))
		assert.False(t, cache.has("stats:"+userB+":gen"))
	})

	t.Run("Other events leave the cache alone", func(t *testing.T) {
		_, err := uc.GetUserStats(ctx, userA, 30)
		require.NoError(t, err)

		require.NoError(t, inv.Publish(ctx, entity.NewDomainEvent(entity.EventGrantClaimed, userA, userA, nil, now)))

		assert.True(t, cache.has("stats:"+userA+":gen"))
	})

	assert.Equal(t, []entity.EventType{
		entity.EventStakePlaced,
		entity.EventPropositionResolved,
		entity.EventGrantClaimed,
	}, events.Types())
}

func TestCacheInvalidatorWithoutNext(t *testing.T) {
	uc := NewStatsUseCase(seedStore(t), nil, 0, usecasetest.NewClock(now).TimeProvider(t), logger.NewNoopLogger())
	inv := NewCacheInvalidator(nil, uc)

	assert.NoError(t, inv.Publish(context.Background(), entity.NewDomainEvent(entity.EventStakePlaced, "p", userA, nil, now)))
	assert.NoError(t, inv.Close())
}
