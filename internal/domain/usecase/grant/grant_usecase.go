package grant

import (
	"context"
	"errors"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/messaging"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/domain/usecase/ledger"
)

// GrantUseCase hands out the once-per-UTC-day currency grant
type GrantUseCase struct {
	uow          persistence.UnitOfWork
	ledger       *ledger.Service
	publisher    messaging.EventPublisher
	metrics      coreport.MetricsRecorder
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewGrantUseCase creates a new GrantUseCase
func NewGrantUseCase(
	uow persistence.UnitOfWork,
	ledgerService *ledger.Service,
	publisher messaging.EventPublisher,
	metrics coreport.MetricsRecorder,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *GrantUseCase {
	return &GrantUseCase{
		uow:          uow,
		ledger:       ledgerService,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Status reports whether the user may claim now
func (g *GrantUseCase) Status(ctx context.Context, userID string) (*entity.GrantStatus, error) {
	user, err := g.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	status := entity.GrantStatusAt(user.LastClaimDate, g.timeProvider.Now())
	return &status, nil
}

// Claim credits the grant. The user row lock plus the per-day ledger
// reference guarantee at most one successful claim per UTC day.
func (g *GrantUseCase) Claim(ctx context.Context, userID string) (*usecase.ClaimResult, error) {
	now := g.timeProvider.Now()
	var balance int64

	err := persistence.RunInTransaction(ctx, g.uow, func(txCtx context.Context) error {
		users := g.uow.GetUserRepository(txCtx)
		user, err := users.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if !entity.CanClaim(user.LastClaimDate, now) {
			return alreadyClaimed(userID, user.LastClaimDate, now)
		}

		credited, err := g.ledger.Credit(txCtx, userID, entity.LedgerDailyGrant, entity.DailyGrantAmount,
			entity.GrantReference(userID, now), now)
		if err != nil {
			if errors.Is(err, errs.ErrDuplicateKey) {
				return alreadyClaimed(userID, &now, now)
			}
			return err
		}

		credited.MarkGrantClaimed(now)
		if err := users.Update(txCtx, credited); err != nil {
			return err
		}
		balance = credited.Balance()
		return nil
	})
	if err != nil {
		g.metrics.OperationFailed("claim_grant", errs.ErrorCode(err))
		if !errs.IsBusinessError(err) && !errs.IsConflictError(err) {
			g.logger.Error("Failed to claim daily grant", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil, err
	}

	g.metrics.GrantClaimed(entity.DailyGrantAmount)
	g.logger.Info("Daily grant claimed", map[string]any{
		"user_id": userID,
		"amount":  entity.DailyGrantAmount,
		"balance": balance,
	})
	messaging.PublishBestEffort(ctx, g.publisher, g.logger, entity.NewDomainEvent(
		entity.EventGrantClaimed, userID, userID, map[string]any{
			"amount":  entity.DailyGrantAmount,
			"balance": balance,
		}, now))

	return &usecase.ClaimResult{
		Amount:    entity.DailyGrantAmount,
		Balance:   balance,
		ClaimedAt: now,
	}, nil
}

func alreadyClaimed(userID string, lastClaim *time.Time, now time.Time) error {
	status := entity.GrantStatusAt(lastClaim, now)
	return errs.NewAlreadyClaimedError(userID, status.NextClaimAt, status.Remaining)
}
