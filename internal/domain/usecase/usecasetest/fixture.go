// Package usecasetest holds fixtures shared by the use case tests.
package usecasetest

import (
	"context"
	"sync"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/repository/memory"
	coremocks "github.com/mensunw/people-bets/mocks/port/core"
	messagingmocks "github.com/mensunw/people-bets/mocks/port/messaging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// T is the subset of *testing.T the fixtures need
type T interface {
	mock.TestingT
	require.TestingT
	Cleanup(func())
}

// Clock is a settable time source
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a clock at now
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the clock's current instant
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// TimeProvider returns a mock provider driven by the clock
func (c *Clock) TimeProvider(t T) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().RunAndReturn(c.Now).Maybe()
	tp.EXPECT().Since(mock.Anything).RunAndReturn(func(from time.Time) coreport.Duration {
		return coreport.Duration(c.Now().Sub(from))
	}).Maybe()
	return tp
}

// NewStore returns an empty memory store with the Global group seeded
func NewStore(t T, now time.Time) *memory.Store {
	store := memory.NewStore(logger.NewNoopLogger())
	require.NoError(t, store.SeedGlobalGroup(context.Background(), entity.GlobalGroup(now)))
	return store
}

// AddUser inserts a user with balance and a Global membership
func AddUser(t T, store *memory.Store, id string, balance int64, now time.Time) *entity.User {
	ctx := context.Background()
	user, err := entity.NewUser(id, "", balance, now)
	require.NoError(t, err)
	require.NoError(t, store.GetUserRepository(ctx).Create(ctx, user))
	require.NoError(t, store.GetGroupRepository(ctx).AddMember(ctx, entity.NewMembership(entity.GlobalGroupID, id, now)))
	return user
}

// Balance reads a user's committed balance
func Balance(t T, store *memory.Store, id string) int64 {
	ctx := context.Background()
	user, err := store.GetUserRepository(ctx).GetByID(ctx, id)
	require.NoError(t, err)
	return user.Balance()
}

// Metrics returns a recorder mock that accepts any call
func Metrics(t T) *coremocks.MockMetricsRecorder {
	m := coremocks.NewMockMetricsRecorder(t)
	m.EXPECT().StakePlaced(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().PropositionResolved(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.EXPECT().GrantClaimed(mock.Anything).Maybe()
	m.EXPECT().LeaderboardRebuilt(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().OperationFailed(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().DBPoolStats(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return m
}

// EventLog collects published events
type EventLog struct {
	mu     sync.Mutex
	events []entity.DomainEvent
}

// Types returns the published event types in order
func (l *EventLog) Types() []entity.EventType {
	l.mu.Lock()
	defer l.mu.Unlock()
	types := make([]entity.EventType, 0, len(l.events))
	for _, e := range l.events {
		types = append(types, e.Type)
	}
	return types
}

// Events returns a copy of the published events
func (l *EventLog) Events() []entity.DomainEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]entity.DomainEvent(nil), l.events...)
}

// Publisher returns a publisher mock that appends to an EventLog
func Publisher(t T) (*messagingmocks.MockEventPublisher, *EventLog) {
	log := &EventLog{}
	pub := messagingmocks.NewMockEventPublisher(t)
	pub.EXPECT().Publish(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, events ...entity.DomainEvent) error {
		log.mu.Lock()
		log.events = append(log.events, events...)
		log.mu.Unlock()
		return nil
	}).Maybe()
	return pub, log
}
