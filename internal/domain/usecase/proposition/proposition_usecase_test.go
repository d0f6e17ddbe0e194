package proposition

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/domain/usecase/ledger"
	"github.com/mensunw/people-bets/internal/domain/usecase/settlement"
	"github.com/mensunw/people-bets/internal/domain/usecase/stake"
	"github.com/mensunw/people-bets/internal/domain/usecase/usecasetest"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	creatorID = "c0000000-0000-4000-8000-000000000000"
	userA     = "a0000000-0000-4000-8000-00000000000a"
	userB     = "b0000000-0000-4000-8000-00000000000b"
	userC     = "c0000000-0000-4000-8000-00000000000c"
)

var start = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store  *memory.Store
	clock  *usecasetest.Clock
	events *usecasetest.EventLog
	props  *PropositionUseCase
	stakes *stake.StakeUseCase
}

func newFixture(t *testing.T) *fixture {
	store := usecasetest.NewStore(t, start)
	for _, id := range []string{creatorID, userA, userB, userC} {
		usecasetest.AddUser(t, store, id, 1000, start)
	}

	clock := usecasetest.NewClock(start)
	tp := clock.TimeProvider(t)
	log := logger.NewNoopLogger()
	metrics := usecasetest.Metrics(t)
	publisher, events := usecasetest.Publisher(t)
	ledgerService := ledger.NewService(store, log)

	return &fixture{
		store:  store,
		clock:  clock,
		events: events,
		props: NewPropositionUseCase(store, settlement.NewEngine(store, ledgerService, log),
			publisher, metrics, tp, log),
		stakes: stake.NewStakeUseCase(store, ledgerService, publisher, metrics, tp, log),
	}
}

func (f *fixture) create(t *testing.T, groupID string) *entity.Proposition {
	prop, err := f.props.CreateProposition(context.Background(), creatorID, usecase.CreatePropositionInput{
		Title:       "Rain tomorrow",
		Description: "Millimetres of rain at the airport station",
		Target:      "5.5",
		GroupID:     groupID,
		WindowEnd:   f.clock.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	return prop
}

func (f *fixture) privateGroup(t *testing.T, leaderID string) *entity.Group {
	ctx := context.Background()
	group, err := entity.NewGroup("Office pool", "", true, leaderID, start)
	require.NoError(t, err)
	require.NoError(t, f.store.GetGroupRepository(ctx).Create(ctx, group))
	require.NoError(t, f.store.GetGroupRepository(ctx).AddMember(ctx, entity.NewMembership(group.ID, leaderID, start)))
	return group
}

func TestCreateProposition(t *testing.T) {
	ctx := context.Background()

	t.Run("Anyone can create in Global", func(t *testing.T) {
		f := newFixture(t)

		prop := f.create(t, entity.GlobalGroupID)

		assert.Equal(t, entity.StatusOpen, prop.Status)
		assert.Equal(t, "5.5", prop.Target.String())
		assert.Equal(t, creatorID, prop.CreatorID)
	})

	t.Run("Window in the past is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.props.CreateProposition(ctx, creatorID, usecase.CreatePropositionInput{
			Title:       "Rain tomorrow",
			Description: "Millimetres of rain at the airport station",
			Target:      "5",
			GroupID:     entity.GlobalGroupID,
			WindowEnd:   start.Add(-time.Minute),
		})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Only the leader creates in a private group", func(t *testing.T) {
		f := newFixture(t)
		group := f.privateGroup(t, userA)

		_, err := f.props.CreateProposition(ctx, creatorID, usecase.CreatePropositionInput{
			Title:       "Rain tomorrow",
			Description: "Millimetres of rain at the airport station",
			Target:      "5",
			GroupID:     group.ID,
			WindowEnd:   start.Add(time.Hour),
		})

		assert.ErrorIs(t, err, errs.ErrAuthorization)
	})

	t.Run("Unknown group", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.props.CreateProposition(ctx, creatorID, usecase.CreatePropositionInput{
			Title:       "Rain tomorrow",
			Description: "Millimetres of rain at the airport station",
			Target:      "5",
			GroupID:     "missing",
			WindowEnd:   start.Add(time.Hour),
		})

		assert.ErrorIs(t, err, errs.ErrGroupNotFound)
	})
}

func TestResolveSettlesThePool(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	prop := f.create(t, entity.GlobalGroupID)

	_, err := f.stakes.PlaceStake(ctx, prop.ID, userA, "over", "300")
	require.NoError(t, err)
	_, err = f.stakes.PlaceStake(ctx, prop.ID, userB, "under", "100")
	require.NoError(t, err)
	_, err = f.stakes.PlaceStake(ctx, prop.ID, userC, "under", "100")
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)

	result, err := f.props.Resolve(ctx, prop.ID, creatorID, "under")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Proposition resolved: under wins, 500 paid to 2 winners", result.Message)
	assert.Equal(t, int64(700), usecasetest.Balance(t, f.store, userA))
	assert.Equal(t, int64(1150), usecasetest.Balance(t, f.store, userB))
	assert.Equal(t, int64(1150), usecasetest.Balance(t, f.store, userC))

	assert.Equal(t, []entity.EventType{
		entity.EventStakePlaced,
		entity.EventStakePlaced,
		entity.EventStakePlaced,
		entity.EventPropositionResolved,
	}, f.events.Types())
	resolved := f.events.Events()[3]
	assert.ElementsMatch(t, []string{userA, userB, userC}, resolved.Payload["stakers"])

	view, err := f.props.GetProposition(ctx, prop.ID, userB)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusResolved, view.Status)
	require.NotNil(t, view.Proposition.WinningSide)
	assert.Equal(t, entity.SideUnder, *view.Proposition.WinningSide)

	_, err = f.props.Resolve(ctx, prop.ID, creatorID, "over")
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, int64(1150), usecasetest.Balance(t, f.store, userB))
}

func TestResolveWithoutWinnersForfeits(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	prop := f.create(t, entity.GlobalGroupID)

	_, err := f.stakes.PlaceStake(ctx, prop.ID, userA, "under", "120")
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)

	result, err := f.props.Resolve(ctx, prop.ID, creatorID, "over")

	require.NoError(t, err)
	assert.Equal(t, int64(120), result.Settlement.Forfeited)
	assert.Equal(t, "Proposition resolved: over wins, no winning stakes, 120 forfeited", result.Message)
	assert.Equal(t, int64(880), usecasetest.Balance(t, f.store, userA))
}

func TestResolveRejections(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		requester string
		side      string
		advance   time.Duration
		expected  error
	}{
		{"Invalid side", creatorID, "sideways", 2 * time.Hour, errs.ErrValidation},
		{"Not the creator", userA, "over", 2 * time.Hour, errs.ErrAuthorization},
		{"Window still open", creatorID, "over", 0, errs.ErrInvalidState},
		{"Unknown proposition", creatorID, "over", 2 * time.Hour, errs.ErrPropositionNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			prop := f.create(t, entity.GlobalGroupID)
			f.clock.Advance(tc.advance)

			id := prop.ID
			if tc.expected == errs.ErrPropositionNotFound {
				id = "missing"
			}
			_, err := f.props.Resolve(ctx, id, tc.requester, tc.side)

			assert.ErrorIs(t, err, tc.expected)
			assert.NotContains(t, f.events.Types(), entity.EventPropositionResolved)
		})
	}
}

func TestConcurrentResolvePaysOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	prop := f.create(t, entity.GlobalGroupID)

	_, err := f.stakes.PlaceStake(ctx, prop.ID, userA, "over", "100")
	require.NoError(t, err)
	_, err = f.stakes.PlaceStake(ctx, prop.ID, userB, "under", "100")
	require.NoError(t, err)
	f.clock.Advance(2 * time.Hour)

	var wg sync.WaitGroup
	results := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.props.Resolve(ctx, prop.ID, creatorID, "over")
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
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int64(1100), usecasetest.Balance(t, f.store, userA))
	assert.Equal(t, int64(900), usecasetest.Balance(t, f.store, userB))
}

func TestGetProposition(t *testing.T) {
	ctx := context.Background()

	t.Run("View carries pool and own stake", func(t *testing.T) {
		f := newFixture(t)
		prop := f.create(t, entity.GlobalGroupID)
		_, err := f.stakes.PlaceStake(ctx, prop.ID, userA, "over", "300")
		require.NoError(t, err)
		_, err = f.stakes.PlaceStake(ctx, prop.ID, userB, "under", "200")
		require.NoError(t, err)

		view, err := f.props.GetProposition(ctx, prop.ID, userB)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusOpen, view.Status)
		assert.Equal(t, entity.PoolTotals{TotalOver: 300, TotalUnder: 200, Stakers: 2}, view.Totals)
		assert.Equal(t, entity.Odds{OverPct: 60, UnderPct: 40}, view.Odds)
		require.NotNil(t, view.MyStake)
		assert.Equal(t, entity.SideUnder, view.MyStake.Side)
		assert.Equal(t, int64(500), view.PotentialWinnings)
	})

	t.Run("Closed after the deadline without a stake", func(t *testing.T) {
		f := newFixture(t)
		prop := f.create(t, entity.GlobalGroupID)
		f.clock.Advance(time.Hour)

		view, err := f.props.GetProposition(ctx, prop.ID, userC)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusClosed, view.Status)
		assert.Nil(t, view.MyStake)
		assert.Zero(t, view.PotentialWinnings)
	})

	t.Run("Private group hides propositions from outsiders", func(t *testing.T) {
		f := newFixture(t)
		group := f.privateGroup(t, creatorID)
		prop := f.create(t, group.ID)

		_, err := f.props.GetProposition(ctx, prop.ID, userA)
		assert.ErrorIs(t, err, errs.ErrAuthorization)

		_, err = f.props.ListByGroup(ctx, group.ID, userA)
		assert.ErrorIs(t, err, errs.ErrAuthorization)

		_, err = f.props.GetProposition(ctx, prop.ID, creatorID)
		assert.NoError(t, err)
	})
}

func TestListByGroup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first := f.create(t, entity.GlobalGroupID)
	f.clock.Advance(time.Minute)
	second := f.create(t, entity.GlobalGroupID)
	_, err := f.stakes.PlaceStake(ctx, first.ID, userA, "over", "40")
	require.NoError(t, err)

	views, err := f.props.ListByGroup(ctx, entity.GlobalGroupID, userB)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, second.ID, views[0].Proposition.ID)
	assert.Equal(t, first.ID, views[1].Proposition.ID)
	assert.Equal(t, int64(40), views[1].Totals.TotalOver)
	assert.Equal(t, entity.PoolTotals{}, views[0].Totals)
	assert.Equal(t, entity.Odds{OverPct: 50, UnderPct: 50}, views[0].Odds)
}
