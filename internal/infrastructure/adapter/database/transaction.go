package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) *UnitOfWork {
	return &UnitOfWork{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// Begin starts a SERIALIZABLE transaction and stores it in the returned context
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, "begin transaction")
	}

	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
		tx.Rollback()
		u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
		return ctx, u.errorMapper.MapError(err, "set isolation level")
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction. A serialization failure surfaces as ErrConflict.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		mapped := u.errorMapper.MapError(err, "commit transaction")
		u.logger.Warn("Failed to commit transaction", map[string]any{
			"error":  err.Error(),
			"mapped": mapped.Error(),
		})
		return mapped
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.logger)
}

func (u *UnitOfWork) GetGroupRepository(ctx context.Context) persistence.GroupRepository {
	return repository.NewGroupRepository(u.getDbFromContext(ctx), u.logger)
}

func (u *UnitOfWork) GetPropositionRepository(ctx context.Context) persistence.PropositionRepository {
	return repository.NewPropositionRepository(u.getDbFromContext(ctx), u.logger)
}

func (u *UnitOfWork) GetStakeRepository(ctx context.Context) persistence.StakeRepository {
	return repository.NewStakeRepository(u.getDbFromContext(ctx), u.logger)
}

func (u *UnitOfWork) GetLedgerRepository(ctx context.Context) persistence.LedgerRepository {
	return repository.NewLedgerRepository(u.getDbFromContext(ctx), u.logger)
}

func (u *UnitOfWork) GetLeaderboardRepository(ctx context.Context) persistence.LeaderboardRepository {
	return repository.NewLeaderboardRepository(u.getDbFromContext(ctx), u.logger)
}

func (u *UnitOfWork) GetSettlementRepository(ctx context.Context) persistence.SettlementRepository {
	return repository.NewSettlementRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext returns the transaction in ctx, or the pool when there is none
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)
