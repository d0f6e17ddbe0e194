package stake

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/messaging"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/domain/usecase/ledger"
)

// StakeUseCase places wagers against open propositions
type StakeUseCase struct {
	uow          persistence.UnitOfWork
	ledger       *ledger.Service
	publisher    messaging.EventPublisher
	metrics      coreport.MetricsRecorder
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewStakeUseCase creates a new StakeUseCase
func NewStakeUseCase(
	uow persistence.UnitOfWork,
	ledgerService *ledger.Service,
	publisher messaging.EventPublisher,
	metrics coreport.MetricsRecorder,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *StakeUseCase {
	return &StakeUseCase{
		uow:          uow,
		ledger:       ledgerService,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// PlaceStake debits the user and records the stake in one transaction.
// Checks run in this order: amount, side, proposition exists, group access,
// betting window, existing stake, balance.
func (s *StakeUseCase) PlaceStake(ctx context.Context, propositionID, userID, side, amount string) (*usecase.PlaceStakeResult, error) {
	value, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	chosen, err := entity.ParseSide(side)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	result := &usecase.PlaceStakeResult{}

	err = persistence.RunInTransaction(ctx, s.uow, func(txCtx context.Context) error {
		prop, err := s.uow.GetPropositionRepository(txCtx).GetForUpdate(txCtx, propositionID)
		if err != nil {
			return err
		}

		if err := s.checkAccess(txCtx, prop.GroupID, userID); err != nil {
			return err
		}

		if err := prop.CheckBettable(now); err != nil {
			return err
		}

		stakes := s.uow.GetStakeRepository(txCtx)
		existing, err := stakes.GetByUserAndProposition(txCtx, propositionID, userID)
		if err != nil && !errs.IsNotFoundError(err) {
			return err
		}
		if existing != nil {
			return errs.NewDuplicateStakeError(propositionID, userID)
		}

		stake, err := entity.NewStake(propositionID, userID, chosen, value, now)
		if err != nil {
			return err
		}

		before, err := stakes.ListByProposition(txCtx, propositionID)
		if err != nil {
			return err
		}

		user, err := s.ledger.Debit(txCtx, userID, entity.LedgerStake, value, entity.StakeReference(stake.ID), now)
		if err != nil {
			return err
		}

		if err := stakes.Create(txCtx, stake); err != nil {
			return err
		}

		result.Stake = stake
		result.Balance = user.Balance()
		result.Totals = entity.TotalsOf(before).Add(stake, true)
		result.Odds = result.Totals.Odds()
		return nil
	})
	if err != nil {
		s.metrics.OperationFailed("place_stake", errs.ErrorCode(err))
		if !errs.IsBusinessError(err) && !errs.IsConflictError(err) {
			s.logger.Error("Failed to place stake", map[string]any{
				"proposition_id": propositionID,
				"user_id":        userID,
				"error":          err.Error(),
			})
		}
		return nil, err
	}

	s.metrics.StakePlaced(string(chosen), value)
	s.logger.Info("Stake placed", map[string]any{
		"stake_id":       result.Stake.ID,
		"proposition_id": propositionID,
		"user_id":        userID,
		"side":           string(chosen),
		"amount":         value,
	})
	messaging.PublishBestEffort(ctx, s.publisher, s.logger, entity.NewDomainEvent(
		entity.EventStakePlaced, propositionID, userID, map[string]any{
			"stake_id":    result.Stake.ID,
			"side":        string(chosen),
			"amount":      value,
			"total_over":  result.Totals.TotalOver,
			"total_under": result.Totals.TotalUnder,
		}, now))

	return result, nil
}

// checkAccess keeps outsiders from betting in private groups
func (s *StakeUseCase) checkAccess(ctx context.Context, groupID, userID string) error {
	group, err := s.uow.GetGroupRepository(ctx).GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if !group.IsPrivate {
		return nil
	}
	member, err := s.uow.GetGroupRepository(ctx).IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !member {
		return errs.NewAuthorizationError(userID, "place stake", "group is private")
	}
	return nil
}

// GetTotals returns the current pool of a proposition
func (s *StakeUseCase) GetTotals(ctx context.Context, propositionID string) (entity.PoolTotals, error) {
	if _, err := s.uow.GetPropositionRepository(ctx).GetByID(ctx, propositionID); err != nil {
		return entity.PoolTotals{}, err
	}
	stakes, err := s.uow.GetStakeRepository(ctx).ListByProposition(ctx, propositionID)
	if err != nil {
		return entity.PoolTotals{}, err
	}
	return entity.TotalsOf(stakes), nil
}
