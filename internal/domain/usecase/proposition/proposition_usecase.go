package proposition

import (
	"context"
	"fmt"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/messaging"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/domain/usecase/settlement"
)

// PropositionUseCase drives the proposition lifecycle from creation to settlement
type PropositionUseCase struct {
	uow          persistence.UnitOfWork
	engine       *settlement.Engine
	publisher    messaging.EventPublisher
	metrics      coreport.MetricsRecorder
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPropositionUseCase creates a new PropositionUseCase
func NewPropositionUseCase(
	uow persistence.UnitOfWork,
	engine *settlement.Engine,
	publisher messaging.EventPublisher,
	metrics coreport.MetricsRecorder,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *PropositionUseCase {
	return &PropositionUseCase{
		uow:          uow,
		engine:       engine,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// checkVisible rejects viewers outside a private group
func (p *PropositionUseCase) checkVisible(ctx context.Context, group *entity.Group, viewerID string) error {
	if !group.IsPrivate {
		return nil
	}
	member, err := p.uow.GetGroupRepository(ctx).IsMember(ctx, group.ID, viewerID)
	if err != nil {
		return err
	}
	if !member {
		return errs.NewAuthorizationError(viewerID, "view propositions", "group is private")
	}
	return nil
}

// CreateProposition validates input and opens a proposition in the group
func (p *PropositionUseCase) CreateProposition(ctx context.Context, creatorID string, input usecase.CreatePropositionInput) (*entity.Proposition, error) {
	now := p.timeProvider.Now()
	var prop *entity.Proposition

	err := persistence.RunInTransaction(ctx, p.uow, func(txCtx context.Context) error {
		if _, err := p.uow.GetUserRepository(txCtx).GetByID(txCtx, creatorID); err != nil {
			return err
		}

		group, err := p.uow.GetGroupRepository(txCtx).GetByID(txCtx, input.GroupID)
		if err != nil {
			return err
		}

		prop, err = entity.NewProposition(entity.NewPropositionParams{
			Title:       input.Title,
			Description: input.Description,
			Target:      input.Target,
			CreatorID:   creatorID,
			WindowEnd:   input.WindowEnd,
		}, group, now)
		if err != nil {
			return err
		}

		return p.uow.GetPropositionRepository(txCtx).Create(txCtx, prop)
	})
	if err != nil {
		p.metrics.OperationFailed("create_proposition", errs.ErrorCode(err))
		return nil, err
	}

	p.logger.Info("Proposition created", map[string]any{
		"proposition_id": prop.ID,
		"group_id":       prop.GroupID,
		"creator_id":     creatorID,
		"window_end":     prop.WindowEnd,
	})
	return prop, nil
}

// GetProposition returns the proposition with its pool and the viewer's position
func (p *PropositionUseCase) GetProposition(ctx context.Context, propositionID, viewerID string) (*usecase.PropositionView, error) {
	now := p.timeProvider.Now()

	prop, err := p.uow.GetPropositionRepository(ctx).GetByID(ctx, propositionID)
	if err != nil {
		return nil, err
	}
	group, err := p.uow.GetGroupRepository(ctx).GetByID(ctx, prop.GroupID)
	if err != nil {
		return nil, err
	}
	if err := p.checkVisible(ctx, group, viewerID); err != nil {
		return nil, err
	}

	stakes, err := p.uow.GetStakeRepository(ctx).ListByProposition(ctx, prop.ID)
	if err != nil {
		return nil, err
	}
	totals := entity.TotalsOf(stakes)

	view := &usecase.PropositionView{
		Proposition: prop,
		Status:      prop.DisplayStatus(now),
		Totals:      totals,
		Odds:        totals.Odds(),
	}
	for _, s := range stakes {
		if s.UserID == viewerID {
			view.MyStake = s
			view.PotentialWinnings = totals.PotentialPayout(s.Side, s.Amount)
			break
		}
	}
	return view, nil
}

// ListByGroup returns the group's propositions with their pools, newest first
func (p *PropositionUseCase) ListByGroup(ctx context.Context, groupID, viewerID string) ([]*usecase.PropositionView, error) {
	now := p.timeProvider.Now()

	group, err := p.uow.GetGroupRepository(ctx).GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := p.checkVisible(ctx, group, viewerID); err != nil {
		return nil, err
	}

	props, err := p.uow.GetPropositionRepository(ctx).ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(props))
	for _, prop := range props {
		ids = append(ids, prop.ID)
	}
	pools, err := p.uow.GetStakeRepository(ctx).TotalsByPropositions(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*usecase.PropositionView, 0, len(props))
	for _, prop := range props {
		totals := pools[prop.ID]
		views = append(views, &usecase.PropositionView{
			Proposition: prop,
			Status:      prop.DisplayStatus(now),
			Totals:      totals,
			Odds:        totals.Odds(),
		})
	}
	return views, nil
}

// Resolve records the outcome and settles the pool atomically. The
// proposition row lock makes a concurrent second resolve see the first
// one's result and fail with an invalid state error.
func (p *PropositionUseCase) Resolve(ctx context.Context, propositionID, requesterID, winningSide string) (*usecase.ResolveResult, error) {
	side, err := entity.ParseSide(winningSide)
	if err != nil {
		return nil, err
	}

	now := p.timeProvider.Now()
	var result *entity.Settlement

	err = persistence.RunInTransaction(ctx, p.uow, func(txCtx context.Context) error {
		props := p.uow.GetPropositionRepository(txCtx)
		prop, err := props.GetForUpdate(txCtx, propositionID)
		if err != nil {
			return err
		}
		if err := prop.Resolve(side, requesterID, now); err != nil {
			return err
		}
		if err := props.Update(txCtx, prop); err != nil {
			return err
		}

		result, err = p.engine.Settle(txCtx, prop, now)
		return err
	})
	if err != nil {
		p.metrics.OperationFailed("resolve", errs.ErrorCode(err))
		if !errs.IsBusinessError(err) && !errs.IsConflictError(err) {
			p.logger.Error("Failed to resolve proposition", map[string]any{
				"proposition_id": propositionID,
				"requester_id":   requesterID,
				"error":          err.Error(),
			})
		}
		return nil, err
	}

	p.metrics.PropositionResolved(string(side), result.PaidOut, result.Forfeited)
	messaging.PublishBestEffort(ctx, p.publisher, p.logger, entity.NewDomainEvent(
		entity.EventPropositionResolved, propositionID, requesterID, map[string]any{
			"winning_side": string(side),
			"pot":          result.Totals.Pot(),
			"paid_out":     result.PaidOut,
			"forfeited":    result.Forfeited,
			"winners":      len(result.Payouts),
			"stakers":      result.Stakers,
		}, now))

	message := fmt.Sprintf("Proposition resolved: %s wins, %d paid to %d winners", side, result.PaidOut, len(result.Payouts))
	if result.NoWinners() {
		message = fmt.Sprintf("Proposition resolved: %s wins, no winning stakes, %d forfeited", side, result.Forfeited)
	}

	return &usecase.ResolveResult{Success: true, Message: message, Settlement: result}, nil
}
