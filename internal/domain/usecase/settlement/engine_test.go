package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
	"github.com/mensunw/people-bets/internal/domain/usecase/ledger"
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
	userC     = "c0000000-0000-4000-8000-00000000000c"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type position struct {
	side   entity.Side
	amount int64
}

func resolvedProposition(t *testing.T, store *memory.Store, winning entity.Side, stakes map[string]position) *entity.Proposition {
	ctx := context.Background()
	prop := &entity.Proposition{
		ID:        "prop-1",
		Title:     "Rain tomorrow",
		Target:    decimal.NewFromInt(5),
		GroupID:   entity.GlobalGroupID,
		CreatorID: creatorID,
		WindowEnd: now.Add(-time.Hour),
		Status:    entity.StatusOpen,
		CreatedAt: now.Add(-2 * time.Hour),
	}
	require.NoError(t, store.GetPropositionRepository(ctx).Create(ctx, prop))

	for user, s := range stakes {
		stake, err := entity.NewStake(prop.ID, user, s.side, s.amount, now.Add(-90*time.Minute))
		require.NoError(t, err)
		require.NoError(t, store.GetStakeRepository(ctx).Create(ctx, stake))
	}

	require.NoError(t, prop.Resolve(winning, creatorID, now))
	return prop
}

func settle(t *testing.T, store *memory.Store, prop *entity.Proposition) (*entity.Settlement, error) {
	log := logger.NewNoopLogger()
	engine := NewEngine(store, ledger.NewService(store, log), log)

	var result *entity.Settlement
	err := persistence.RunInTransaction(context.Background(), store, func(txCtx context.Context) error {
		var err error
		result, err = engine.Settle(txCtx, prop, now)
		return err
	})
	return result, err
}

func TestSettleCreditsWinners(t *testing.T) {
	ctx := context.Background()
	store := usecasetest.NewStore(t, now)
	for _, id := range []string{userA, userB, userC} {
		usecasetest.AddUser(t, store, id, 1000, now)
	}

	prop := resolvedProposition(t, store, entity.SideUnder, map[string]position{
		userA: {entity.SideOver, 300},
		userB: {entity.SideUnder, 100},
		userC: {entity.SideUnder, 100},
	})

	result, err := settle(t, store, prop)

	require.NoError(t, err)
	assert.Equal(t, int64(500), result.PaidOut)
	assert.Zero(t, result.Forfeited)

	// stakes were inserted directly, so only payouts move balances here
	assert.Equal(t, int64(1000), usecasetest.Balance(t, store, userA))
	assert.Equal(t, int64(1250), usecasetest.Balance(t, store, userB))
	assert.Equal(t, int64(1250), usecasetest.Balance(t, store, userC))

	saved, err := store.GetSettlementRepository(ctx).GetByProposition(ctx, prop.ID)
	require.NoError(t, err)
	assert.Len(t, saved.Payouts, 2)

	entries, err := store.GetLedgerRepository(ctx).ListByUser(ctx, userB, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.LedgerPayout, entries[0].Kind)
	assert.Equal(t, int64(250), entries[0].Amount)
	assert.Equal(t, int64(1250), entries[0].ResultBalance)
}

func TestSettleForfeitsWithoutWinners(t *testing.T) {
	store := usecasetest.NewStore(t, now)
	for _, id := range []string{userA, userB} {
		usecasetest.AddUser(t, store, id, 1000, now)
	}

	prop := resolvedProposition(t, store, entity.SideOver, map[string]position{
		userA: {entity.SideUnder, 120},
		userB: {entity.SideUnder, 80},
	})

	result, err := settle(t, store, prop)

	require.NoError(t, err)
	assert.True(t, result.NoWinners())
	assert.Equal(t, int64(200), result.Forfeited)
	assert.Equal(t, int64(1000), usecasetest.Balance(t, store, userA))
	assert.Equal(t, int64(1000), usecasetest.Balance(t, store, userB))
}

func TestSettleTwiceIsRejected(t *testing.T) {
	store := usecasetest.NewStore(t, now)
	usecasetest.AddUser(t, store, userA, 1000, now)

	prop := resolvedProposition(t, store, entity.SideOver, map[string]position{
		userA: {entity.SideOver, 50},
	})

	_, err := settle(t, store, prop)
	require.NoError(t, err)

	_, err = settle(t, store, prop)

	assert.ErrorIs(t, err, errs.ErrDuplicateKey)
	assert.Equal(t, int64(1050), usecasetest.Balance(t, store, userA))
}

func TestSettleRequiresResolvedProposition(t *testing.T) {
	store := usecasetest.NewStore(t, now)
	prop := &entity.Proposition{ID: "open", Status: entity.StatusOpen}

	_, err := settle(t, store, prop)

	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
