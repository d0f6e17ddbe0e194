package database_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/domain/usecase/grant"
	"github.com/mensunw/people-bets/internal/domain/usecase/group"
	"github.com/mensunw/people-bets/internal/domain/usecase/leaderboard"
	"github.com/mensunw/people-bets/internal/domain/usecase/ledger"
	"github.com/mensunw/people-bets/internal/domain/usecase/proposition"
	"github.com/mensunw/people-bets/internal/domain/usecase/settlement"
	"github.com/mensunw/people-bets/internal/domain/usecase/stake"
	"github.com/mensunw/people-bets/internal/domain/usecase/usecasetest"
	"github.com/mensunw/people-bets/internal/domain/usecase/user"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/database"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_PropositionLifecycle(t *testing.T) {
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	ctx := context.Background()
	log := logger.NewNoopLogger()

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := usecasetest.NewClock(start)
	tp := clock.TimeProvider(t)
	metrics := usecasetest.Metrics(t)
	pub, events := usecasetest.Publisher(t)

	uow := tdb.Manager.CreateUnitOfWork()
	ledgerSvc := ledger.NewService(uow, log)
	users := user.NewUserUseCase(uow, ledgerSvc, tp, log)
	groups := group.NewGroupUseCase(uow, tp, log)
	props := proposition.NewPropositionUseCase(uow, settlement.NewEngine(uow, ledgerSvc, log), pub, metrics, tp, log)
	stakes := stake.NewStakeUseCase(uow, ledgerSvc, pub, metrics, tp, log)
	board := leaderboard.NewLeaderboardUseCase(uow, pub, metrics, tp, log)

	a, b, c := uuid.NewString(), uuid.NewString(), uuid.NewString()
	for _, id := range []string{a, b, c} {
		_, err := users.Bootstrap(ctx, entity.Identity{UserID: id}, "")
		require.NoError(t, err)
	}

	g, err := groups.CreateGroup(ctx, a, usecase.CreateGroupInput{Name: "Office pool"})
	require.NoError(t, err)
	require.NoError(t, groups.JoinGroup(ctx, g.ID, b))
	require.NoError(t, groups.JoinGroup(ctx, g.ID, c))
	assert.ErrorIs(t, groups.JoinGroup(ctx, g.ID, c), errs.ErrAlreadyMember)

	p, err := props.CreateProposition(ctx, a, usecase.CreatePropositionInput{
		Title:       "Rain on Friday",
		Description: "Over means more than 5mm of rain at the airport",
		Target:      "5",
		GroupID:     g.ID,
		WindowEnd:   start.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = stakes.PlaceStake(ctx, p.ID, a, "over", "300")
	require.NoError(t, err)
	_, err = stakes.PlaceStake(ctx, p.ID, b, "under", "150")
	require.NoError(t, err)
	placed, err := stakes.PlaceStake(ctx, p.ID, c, "under", "150")
	require.NoError(t, err)
	assert.Equal(t, entity.PoolTotals{TotalOver: 300, TotalUnder: 300, Stakers: 3}, placed.Totals)

	_, err = stakes.PlaceStake(ctx, p.ID, c, "over", "10")
	assert.ErrorIs(t, err, errs.ErrDuplicateStake)

	clock.Advance(2 * time.Hour)
	result, err := props.Resolve(ctx, p.ID, a, "under")
	require.NoError(t, err)
	assert.Equal(t, int64(600), result.Settlement.PaidOut)

	for id, want := range map[string]int64{a: 700, b: 1150, c: 1150} {
		profile, err := users.GetProfile(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, profile.Balance, id)
	}

	_, err = props.Resolve(ctx, p.ID, a, "over")
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	rows, err := board.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	top, err := board.Top(ctx, "net_profit", 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, a, top[2].UserID)
	assert.Equal(t, int64(-300), top[2].NetProfit)
	assert.NotEmpty(t, top[0].Username)

	assert.Contains(t, events.Types(), entity.EventPropositionResolved)
}

func TestPostgres_ConcurrentGrantClaimsCreditOnce(t *testing.T) {
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	ctx := context.Background()
	log := logger.NewNoopLogger()

	clock := usecasetest.NewClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	tp := clock.TimeProvider(t)
	pub, _ := usecasetest.Publisher(t)

	uow := tdb.Manager.CreateUnitOfWork()
	ledgerSvc := ledger.NewService(uow, log)
	users := user.NewUserUseCase(uow, ledgerSvc, tp, log)
	grants := grant.NewGrantUseCase(uow, ledgerSvc, pub, usecasetest.Metrics(t), tp, log)

	id := uuid.NewString()
	_, err := users.Bootstrap(ctx, entity.Identity{UserID: id}, "racer")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make(chan error, 6)
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := grants.Claim(ctx, id)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		// Losers either see the claim or lose the serializable race
		assert.True(t, errs.IsConflictError(err) || errs.ErrorCode(err) == errs.CodeAlreadyClaimed, err.Error())
	}
	assert.Equal(t, 1, succeeded)

	profile, err := users.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.InitialBalance+entity.DailyGrantAmount, profile.Balance)
}

func TestPostgres_InviteSkipsExistingMembers(t *testing.T) {
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	ctx := context.Background()
	log := logger.NewNoopLogger()

	clock := usecasetest.NewClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	tp := clock.TimeProvider(t)

	uow := tdb.Manager.CreateUnitOfWork()
	users := user.NewUserUseCase(uow, ledger.NewService(uow, log), tp, log)
	groups := group.NewGroupUseCase(uow, tp, log)

	leader, member, c, d := uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString()
	for _, id := range []string{leader, member, c, d} {
		_, err := users.Bootstrap(ctx, entity.Identity{UserID: id}, "")
		require.NoError(t, err)
	}

	g, err := groups.CreateGroup(ctx, leader, usecase.CreateGroupInput{Name: "Poker night", IsPrivate: true})
	require.NoError(t, err)
	added, err := groups.InviteMembers(ctx, g.ID, leader, []string{member})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	// Existing member first: the rest of the list still goes through
	added, err = groups.InviteMembers(ctx, g.ID, leader, []string{member, c})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	// Existing members last: the new member must survive the commit
	added, err = groups.InviteMembers(ctx, g.ID, leader, []string{d, leader, c})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	detail, err := groups.GetGroup(ctx, g.ID, leader)
	require.NoError(t, err)
	memberIDs := make([]string, 0, len(detail.Members))
	for _, m := range detail.Members {
		memberIDs = append(memberIDs, m.UserID)
	}
	assert.ElementsMatch(t, []string{leader, member, c, d}, memberIDs)
}
