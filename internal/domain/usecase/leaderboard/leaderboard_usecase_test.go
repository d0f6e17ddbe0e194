package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/domain/usecase/usecasetest"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	creatorID = "c0000000-0000-4000-8000-000000000000"
	userA     = "a0000000-0000-4000-8000-00000000000a"
	userB     = "b0000000-0000-4000-8000-00000000000b"
)

var start = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// seed stores one resolved proposition per winning side with A on over and B on under
func seed(t *testing.T, store *memory.Store, winners ...entity.Side) {
	ctx := context.Background()
	for i, winning := range winners {
		at := start.Add(time.Duration(i) * time.Hour)
		prop := &entity.Proposition{
			ID:        "prop-" + string(rune('a'+i)),
			Title:     "Coin toss",
			Target:    decimal.NewFromInt(1),
			GroupID:   entity.GlobalGroupID,
			CreatorID: creatorID,
			WindowEnd: at,
			Status:    entity.StatusOpen,
			CreatedAt: at.Add(-time.Hour),
		}
		require.NoError(t, store.GetPropositionRepository(ctx).Create(ctx, prop))

		for user, side := range map[string]entity.Side{userA: entity.SideOver, userB: entity.SideUnder} {
			stake, err := entity.NewStake(prop.ID, user, side, 100, at.Add(-time.Minute))
			require.NoError(t, err)
			require.NoError(t, store.GetStakeRepository(ctx).Create(ctx, stake))
		}

		require.NoError(t, prop.Resolve(winning, creatorID, at))
		require.NoError(t, store.GetPropositionRepository(ctx).Update(ctx, prop))
	}
}

func setup(t *testing.T) (*LeaderboardUseCase, *memory.Store, *usecasetest.EventLog) {
	store := usecasetest.NewStore(t, start)
	for _, id := range []string{creatorID, userA, userB} {
		usecasetest.AddUser(t, store, id, 1000, start)
	}
	clock := usecasetest.NewClock(start.Add(24 * time.Hour))
	publisher, events := usecasetest.Publisher(t)
	uc := NewLeaderboardUseCase(store, publisher, usecasetest.Metrics(t), clock.TimeProvider(t), logger.NewNoopLogger())
	return uc, store, events
}

func TestRebuild(t *testing.T) {
	ctx := context.Background()
	uc, store, events := setup(t)
	seed(t, store, entity.SideOver, entity.SideUnder, entity.SideUnder)

	rows, err := uc.Rebuild(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, []entity.EventType{entity.EventLeaderboardRebuilt}, events.Types())

	top, err := uc.Top(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	b := top[0]
	assert.Equal(t, userB, b.UserID)
	assert.Equal(t, entity.DefaultUsername(userB), b.Username)
	assert.Equal(t, 3, b.TotalBets)
	assert.Equal(t, 2, b.Wins)
	assert.Equal(t, int64(100), b.NetProfit)
	assert.Equal(t, 2, b.CurrentStreak)

	a := top[1]
	assert.Equal(t, userA, a.UserID)
	assert.Equal(t, int64(-100), a.NetProfit)
	assert.Equal(t, 0, a.CurrentStreak)
	assert.Equal(t, 1, a.BestStreak)
}

func TestRebuildIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, store, _ := setup(t)
	seed(t, store, entity.SideOver, entity.SideUnder)

	_, err := uc.Rebuild(ctx)
	require.NoError(t, err)
	first, err := uc.Top(ctx, "win_rate", 0)
	require.NoError(t, err)

	_, err = uc.Rebuild(ctx)
	require.NoError(t, err)
	second, err := uc.Top(ctx, "win_rate", 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRebuildEmpty(t *testing.T) {
	uc, _, _ := setup(t)

	rows, err := uc.Rebuild(context.Background())

	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestTop(t *testing.T) {
	ctx := context.Background()
	uc, store, _ := setup(t)
	seed(t, store, entity.SideOver, entity.SideOver, entity.SideUnder)
	_, err := uc.Rebuild(ctx)
	require.NoError(t, err)

	t.Run("Limit trims the result", func(t *testing.T) {
		top, err := uc.Top(ctx, "total_wins", 1)

		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, userA, top[0].UserID)
	})

	t.Run("Unknown sort is rejected", func(t *testing.T) {
		_, err := uc.Top(ctx, "balance", 10)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
