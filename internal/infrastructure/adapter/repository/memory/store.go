package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mensunw/people-bets/internal/domain/entity"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
)

type contextKey string

const txKey contextKey = "memory_tx"

// state is one consistent snapshot of every table
type state struct {
	users        map[string]*entity.User
	groups       map[string]entity.Group
	members      map[string]map[string]entity.Membership // group id -> user id
	propositions map[string]*entity.Proposition
	stakes       []entity.Stake // insertion order
	ledger       []entity.LedgerEntry
	ledgerRefs   map[string]struct{}
	leaderboard  map[string]entity.LeaderboardEntry
	settlements  map[string]entity.Settlement
}

func newState() *state {
	return &state{
		users:        make(map[string]*entity.User),
		groups:       make(map[string]entity.Group),
		members:      make(map[string]map[string]entity.Membership),
		propositions: make(map[string]*entity.Proposition),
		ledgerRefs:   make(map[string]struct{}),
		leaderboard:  make(map[string]entity.LeaderboardEntry),
		settlements:  make(map[string]entity.Settlement),
	}
}

func (s *state) clone() *state {
	c := newState()
	for id, u := range s.users {
		c.users[id] = u.Clone()
	}
	for id, g := range s.groups {
		c.groups[id] = g
	}
	for gid, ms := range s.members {
		inner := make(map[string]entity.Membership, len(ms))
		for uid, m := range ms {
			inner[uid] = m
		}
		c.members[gid] = inner
	}
	for id, p := range s.propositions {
		c.propositions[id] = p.Clone()
	}
	c.stakes = append([]entity.Stake(nil), s.stakes...)
	c.ledger = append([]entity.LedgerEntry(nil), s.ledger...)
	for ref := range s.ledgerRefs {
		c.ledgerRefs[ref] = struct{}{}
	}
	for id, e := range s.leaderboard {
		c.leaderboard[id] = e
	}
	for id, st := range s.settlements {
		st.Payouts = append([]entity.Payout(nil), st.Payouts...)
		c.settlements[id] = st
	}
	return c
}

// tx is an open transaction working on a private copy of the committed state
type tx struct {
	working *state
	done    bool
}

// Store is an in-process implementation of persistence.UnitOfWork.
// Transactions run one at a time and publish their writes on commit, which
// gives the same isolation the SQL store gets from SERIALIZABLE.
type Store struct {
	sem       chan struct{}
	mu        sync.RWMutex
	committed *state
	logger    coreport.Logger
}

// NewStore creates an empty store
func NewStore(logger coreport.Logger) *Store {
	return &Store{
		sem:       make(chan struct{}, 1),
		committed: newState(),
		logger:    logger,
	}
}

// Begin waits for exclusive access and returns a transactional context
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx, fmt.Errorf("failed to begin transaction: %w", ctx.Err())
	}

	s.mu.RLock()
	working := s.committed.clone()
	s.mu.RUnlock()

	return context.WithValue(ctx, txKey, &tx{working: working}), nil
}

// Commit publishes the transaction's writes
func (s *Store) Commit(ctx context.Context) error {
	t, ok := ctx.Value(txKey).(*tx)
	if !ok || t == nil {
		return fmt.Errorf("no transaction found in context")
	}
	if t.done {
		return fmt.Errorf("transaction has already been committed or rolled back")
	}

	s.mu.Lock()
	s.committed = t.working
	s.mu.Unlock()

	t.done = true
	<-s.sem
	return nil
}

// Rollback discards the transaction's writes
func (s *Store) Rollback(ctx context.Context) error {
	t, ok := ctx.Value(txKey).(*tx)
	if !ok || t == nil {
		return fmt.Errorf("no transaction found in context")
	}
	if t.done {
		s.logger.Warn("Transaction has already been committed or rolled back", nil)
		return nil
	}

	t.done = true
	t.working = nil
	<-s.sem
	return nil
}

// read runs fn against the transaction's state or, outside a transaction,
// against the committed state under a read lock
func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if t, ok := ctx.Value(txKey).(*tx); ok && t != nil && !t.done {
		return fn(t.working)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.committed)
}

// write runs fn against the transaction's state or, outside a transaction,
// applies it directly to the committed state
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if t, ok := ctx.Value(txKey).(*tx); ok && t != nil && !t.done {
		return fn(t.working)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.committed)
}

// GetUserRepository returns a user repository bound to ctx
func (s *Store) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return &userRepository{store: s}
}

// GetGroupRepository returns a group repository bound to ctx
func (s *Store) GetGroupRepository(ctx context.Context) persistence.GroupRepository {
	return &groupRepository{store: s}
}

// GetPropositionRepository returns a proposition repository bound to ctx
func (s *Store) GetPropositionRepository(ctx context.Context) persistence.PropositionRepository {
	return &propositionRepository{store: s}
}

// GetStakeRepository returns a stake repository bound to ctx
func (s *Store) GetStakeRepository(ctx context.Context) persistence.StakeRepository {
	return &stakeRepository{store: s}
}

// GetLedgerRepository returns a ledger repository bound to ctx
func (s *Store) GetLedgerRepository(ctx context.Context) persistence.LedgerRepository {
	return &ledgerRepository{store: s}
}

// GetLeaderboardRepository returns a leaderboard repository bound to ctx
func (s *Store) GetLeaderboardRepository(ctx context.Context) persistence.LeaderboardRepository {
	return &leaderboardRepository{store: s}
}

// GetSettlementRepository returns a settlement repository bound to ctx
func (s *Store) GetSettlementRepository(ctx context.Context) persistence.SettlementRepository {
	return &settlementRepository{store: s}
}

// SeedGlobalGroup inserts the Global group if it is missing
func (s *Store) SeedGlobalGroup(ctx context.Context, global *entity.Group) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.groups[global.ID]; !ok {
			st.groups[global.ID] = *global
		}
		return nil
	})
}

// Ping always succeeds; it lets the store stand in for a database health check
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

var _ persistence.UnitOfWork = (*Store)(nil)
