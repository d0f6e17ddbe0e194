package persistence

import (
	"context"
	"fmt"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Repositories bound to the transaction in ctx, or to the plain store
	// when ctx carries none
	GetUserRepository(ctx context.Context) UserRepository
	GetGroupRepository(ctx context.Context) GroupRepository
	GetPropositionRepository(ctx context.Context) PropositionRepository
	GetStakeRepository(ctx context.Context) StakeRepository
	GetLedgerRepository(ctx context.Context) LedgerRepository
	GetLeaderboardRepository(ctx context.Context) LeaderboardRepository
	GetSettlementRepository(ctx context.Context) SettlementRepository
}

// RunInTransaction runs fn inside a transaction. fn's error or panic rolls the
// transaction back; otherwise it is committed.
func RunInTransaction(ctx context.Context, uow UnitOfWork, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback(txCtx)
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := uow.Rollback(txCtx); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	return uow.Commit(txCtx)
}
