package stats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/domain/usecase/usecasetest"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/repository/memory"
	coremocks "github.com/mensunw/people-bets/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	creatorID = "c0000000-0000-4000-8000-000000000000"
	userA     = "a0000000-0000-4000-8000-00000000000a"
	userB     = "b0000000-0000-4000-8000-00000000000b"
)

var now = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func seedStore(t *testing.T) *memory.Store {
	ctx := context.Background()
	store := usecasetest.NewStore(t, now)
	for _, id := range []string{creatorID, userA, userB} {
		usecasetest.AddUser(t, store, id, 1000, now)
	}

	// resolved 5 days ago: A over 100, B under 100, over wins
	resolved := &entity.Proposition{
		ID: "p-resolved", Title: "Coin toss", Target: decimal.NewFromInt(1),
		GroupID: entity.GlobalGroupID, CreatorID: creatorID,
		WindowEnd: now.AddDate(0, 0, -5), Status: entity.StatusOpen, CreatedAt: now.AddDate(0, 0, -6),
	}
	// still open: A under 40
	open := &entity.Proposition{
		ID: "p-open", Title: "Coin toss", Target: decimal.NewFromInt(1),
		GroupID: entity.GlobalGroupID, CreatorID: creatorID,
		WindowEnd: now.Add(time.Hour), Status: entity.StatusOpen, CreatedAt: now.AddDate(0, 0, -1),
	}
	props := store.GetPropositionRepository(ctx)
	require.NoError(t, props.Create(ctx, resolved))
	require.NoError(t, props.Create(ctx, open))

	stakes := store.GetStakeRepository(ctx)
	for _, s := range []struct {
		prop   string
		user   string
		side   entity.Side
		amount int64
		at     time.Time
	}{
		{"p-resolved", userA, entity.SideOver, 100, now.AddDate(0, 0, -6)},
		{"p-resolved", userB, entity.SideUnder, 100, now.AddDate(0, 0, -6)},
		{"p-open", userA, entity.SideUnder, 40, now.AddDate(0, 0, -1)},
	} {
		stake, err := entity.NewStake(s.prop, s.user, s.side, s.amount, s.at)
		require.NoError(t, err)
		require.NoError(t, stakes.Create(ctx, stake))
	}

	require.NoError(t, resolved.Resolve(entity.SideOver, creatorID, now.AddDate(0, 0, -5)))
	require.NoError(t, props.Update(ctx, resolved))
	return store
}

func newUseCase(t *testing.T, store *memory.Store, cache *coremocks.MockCache) *StatsUseCase {
	clock := usecasetest.NewClock(now)
	if cache == nil {
		return NewStatsUseCase(store, nil, 0, clock.TimeProvider(t), logger.NewNoopLogger())
	}
	return NewStatsUseCase(store, cache, time.Minute, clock.TimeProvider(t), logger.NewNoopLogger())
}

func TestGetUserStats(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, seedStore(t), nil)

	result, err := uc.GetUserStats(ctx, userA, 30)

	require.NoError(t, err)
	overall := result.Stats.OverallStats
	assert.Equal(t, 2, overall.TotalBets)
	assert.Equal(t, 1, overall.TotalWins)
	assert.Equal(t, 0, overall.TotalLosses)
	assert.Equal(t, int64(140), overall.TotalWagered)
	assert.Equal(t, int64(200), overall.TotalWinnings)
	assert.Len(t, result.Stats.DailyStats, 2)
	assert.Len(t, result.ETag, 64)

	again, err := uc.GetUserStats(ctx, userA, 30)
	require.NoError(t, err)
	assert.Equal(t, result.ETag, again.ETag)

	other, err := uc.GetUserStats(ctx, userB, 30)
	require.NoError(t, err)
	assert.NotEqual(t, result.ETag, other.ETag)
}

func TestGetUserStatsWindow(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, seedStore(t), nil)

	result, err := uc.GetUserStats(ctx, userA, 3)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.OverallStats.TotalBets)
	assert.Equal(t, int64(40), result.Stats.OverallStats.TotalWagered)
}

func TestGetUserStatsValidation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, seedStore(t), nil)

	for _, rangeDays := range []int{-1, 366} {
		_, err := uc.GetUserStats(ctx, userA, rangeDays)
		assert.ErrorIs(t, err, errs.ErrValidation, "range %d", rangeDays)
	}

	_, err := uc.GetUserStats(ctx, userA, 0)
	assert.NoError(t, err)

	_, err = uc.GetUserStats(ctx, "d0000000-0000-4000-8000-00000000000d", 30)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestGetUserStatsCache(t *testing.T) {
	ctx := context.Background()
	genKey := "stats:" + userA + ":gen"

	t.Run("Miss computes and stores", func(t *testing.T) {
		cache := coremocks.NewMockCache(t)
		cache.EXPECT().Get(mock.Anything, genKey).Return(nil, false, nil).Once()
		cache.EXPECT().Set(mock.Anything, genKey, mock.Anything, time.Minute).Return(nil).Once()
		cache.EXPECT().Get(mock.Anything, "stats:"+userA+":30").Return(nil, false, nil).Once()
		cache.EXPECT().Set(mock.Anything, "stats:"+userA+":30", mock.Anything, time.Minute).Return(nil).Once()
		uc := newUseCase(t, seedStore(t), cache)

		result, err := uc.GetUserStats(ctx, userA, 0)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Stats.OverallStats.TotalBets)
	})

	t.Run("Hit skips the store", func(t *testing.T) {
		payload, err := json.Marshal(cachedStats{
			Stats:      &entity.UserStats{OverallStats: entity.OverallStat{TotalBets: 42}},
			ETag:       "cafe",
			Generation: "g1",
		})
		require.NoError(t, err)

		cache := coremocks.NewMockCache(t)
		cache.EXPECT().Get(mock.Anything, genKey).Return([]byte("g1"), true, nil).Once()
		cache.EXPECT().Get(mock.Anything, "stats:"+userA+":7").Return(payload, true, nil).Once()
		uc := newUseCase(t, seedStore(t), cache)

		result, err := uc.GetUserStats(ctx, userA, 7)

		require.NoError(t, err)
		assert.Equal(t, 42, result.Stats.OverallStats.TotalBets)
		assert.Equal(t, "cafe", result.ETag)
	})

	t.Run("Entry from an older generation is recomputed", func(t *testing.T) {
		payload, err := json.Marshal(cachedStats{
			Stats:      &entity.UserStats{OverallStats: entity.OverallStat{TotalBets: 42}},
			ETag:       "cafe",
			Generation: "g1",
		})
		require.NoError(t, err)

		cache := coremocks.NewMockCache(t)
		cache.EXPECT().Get(mock.Anything, genKey).Return([]byte("g2"), true, nil).Once()
		cache.EXPECT().Get(mock.Anything, "stats:"+userA+":30").Return(payload, true, nil).Once()
		cache.EXPECT().Set(mock.Anything, "stats:"+userA+":30", mock.Anything, time.Minute).
			RunAndReturn(func(_ context.Context, _ string, value []byte, _ time.Duration) error {
				var stored cachedStats
				require.NoError(t, json.Unmarshal(value, &stored))
				assert.Equal(t, "g2", stored.Generation)
				return nil
			}).Once()
		uc := newUseCase(t, seedStore(t), cache)

		result, err := uc.GetUserStats(ctx, userA, 30)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Stats.OverallStats.TotalBets)
	})

	t.Run("Cache failures fall back to the store", func(t *testing.T) {
		cache := coremocks.NewMockCache(t)
		cache.EXPECT().Get(mock.Anything, genKey).Return(nil, false, errors.New("connection refused")).Once()
		uc := newUseCase(t, seedStore(t), cache)

		result, err := uc.GetUserStats(ctx, userA, 30)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Stats.OverallStats.TotalBets)
	})

	t.Run("Marker write failure disables caching", func(t *testing.T) {
		cache := coremocks.NewMockCache(t)
		cache.EXPECT().Get(mock.Anything, genKey).Return(nil, false, nil).Once()
		cache.EXPECT().Set(mock.Anything, genKey, mock.Anything, time.Minute).Return(errors.New("connection refused")).Once()
		uc := newUseCase(t, seedStore(t), cache)

		_, err := uc.GetUserStats(ctx, userA, 30)

		require.NoError(t, err)
	})
}
