package grant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/domain/usecase/ledger"
	"github.com/mensunw/people-bets/internal/domain/usecase/usecasetest"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "a0000000-0000-4000-8000-00000000000a"

var morning = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*GrantUseCase, *memory.Store, *usecasetest.Clock, *usecasetest.EventLog) {
	store := usecasetest.NewStore(t, morning)
	usecasetest.AddUser(t, store, userID, 1000, morning)

	clock := usecasetest.NewClock(morning)
	log := logger.NewNoopLogger()
	publisher, events := usecasetest.Publisher(t)

	uc := NewGrantUseCase(store, ledger.NewService(store, log), publisher,
		usecasetest.Metrics(t), clock.TimeProvider(t), log)
	return uc, store, clock, events
}

func TestClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("First claim credits the grant", func(t *testing.T) {
		uc, store, _, events := setup(t)

		result, err := uc.Claim(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, entity.DailyGrantAmount, result.Amount)
		assert.Equal(t, int64(1500), result.Balance)
		assert.Equal(t, morning, result.ClaimedAt)
		assert.Equal(t, int64(1500), usecasetest.Balance(t, store, userID))
		assert.Equal(t, []entity.EventType{entity.EventGrantClaimed}, events.Types())

		exists, err := store.GetLedgerRepository(ctx).ExistsByReference(ctx, entity.GrantReference(userID, morning))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Second claim on the same UTC day is refused", func(t *testing.T) {
		uc, store, clock, _ := setup(t)
		_, err := uc.Claim(ctx, userID)
		require.NoError(t, err)

		clock.Set(time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC))
		_, err = uc.Claim(ctx, userID)

		require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
		var claimed *errs.AlreadyClaimedError
		require.True(t, errors.As(err, &claimed))
		assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), claimed.NextClaimAt)
		assert.Equal(t, time.Hour, claimed.Remaining)
		assert.Equal(t, int64(1500), usecasetest.Balance(t, store, userID))
	})

	t.Run("Claim opens again at UTC midnight", func(t *testing.T) {
		uc, store, clock, _ := setup(t)
		_, err := uc.Claim(ctx, userID)
		require.NoError(t, err)

		clock.Set(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))
		_, err = uc.Claim(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, int64(2000), usecasetest.Balance(t, store, userID))
	})

	t.Run("Unknown user", func(t *testing.T) {
		uc, _, _, _ := setup(t)

		_, err := uc.Claim(ctx, "b0000000-0000-4000-8000-00000000000b")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestConcurrentClaimsCreditOnce(t *testing.T) {
	ctx := context.Background()
	uc, store, _, _ := setup(t)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Claim(ctx, userID)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, errs.ErrAlreadyClaimed)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int64(1500), usecasetest.Balance(t, store, userID))
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	uc, _, clock, _ := setup(t)

	status, err := uc.Status(ctx, userID)
	require.NoError(t, err)
	assert.True(t, status.CanClaim)

	_, err = uc.Claim(ctx, userID)
	require.NoError(t, err)
	clock.Advance(30 * time.Minute)

	status, err = uc.Status(ctx, userID)
	require.NoError(t, err)
	assert.False(t, status.CanClaim)
	assert.Equal(t, 14*time.Hour+30*time.Minute, status.Remaining)
}
