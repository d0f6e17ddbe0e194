package settlement

import (
	"context"
	"sort"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
	"github.com/mensunw/people-bets/internal/domain/usecase/ledger"
)

// Engine distributes the pool of a resolved proposition to its winners
type Engine struct {
	uow    persistence.UnitOfWork
	ledger *ledger.Service
	logger coreport.Logger
}

// NewEngine creates a settlement engine
func NewEngine(uow persistence.UnitOfWork, ledgerService *ledger.Service, logger coreport.Logger) *Engine {
	return &Engine{uow: uow, ledger: ledgerService, logger: logger}
}

// Settle computes and applies the payouts of prop, which must already be
// marked resolved in the transaction carried by ctx. Winners are credited
// in user id order so concurrent settlements lock rows consistently.
func (e *Engine) Settle(ctx context.Context, prop *entity.Proposition, now time.Time) (*entity.Settlement, error) {
	if prop.Status != entity.StatusResolved || prop.WinningSide == nil {
		return nil, errs.NewInvalidStateError(prop.ID, string(prop.Status), "cannot settle an unresolved proposition")
	}

	stakes, err := e.uow.GetStakeRepository(ctx).ListByProposition(ctx, prop.ID)
	if err != nil {
		return nil, err
	}

	result := entity.ComputeSettlement(prop.ID, *prop.WinningSide, stakes, now)

	credits := append([]entity.Payout(nil), result.Payouts...)
	sort.Slice(credits, func(i, j int) bool { return credits[i].UserID < credits[j].UserID })

	for _, p := range credits {
		if p.Amount == 0 {
			continue
		}
		if _, err := e.ledger.Credit(ctx, p.UserID, entity.LedgerPayout, p.Amount, entity.PayoutReference(p.StakeID), now); err != nil {
			e.logger.Error("Failed to credit payout", map[string]any{
				"proposition_id": prop.ID,
				"stake_id":       p.StakeID,
				"user_id":        p.UserID,
				"amount":         p.Amount,
				"error":          err.Error(),
			})
			return nil, err
		}
	}

	if err := e.uow.GetSettlementRepository(ctx).Create(ctx, result); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"proposition_id": prop.ID,
		"winning_side":   string(result.WinningSide),
		"pot":            result.Totals.Pot(),
		"losing_total":   result.Totals.SideTotal(result.WinningSide.Opposite()),
		"winners":        len(result.Payouts),
		"paid_out":       result.PaidOut,
		"forfeited":      result.Forfeited,
	}
	if result.NoWinners() && result.Totals.Pot() > 0 {
		e.logger.Warn("No stakes on the winning side, pot forfeited", fields)
	} else {
		e.logger.Info("Proposition settled", fields)
	}

	return result, nil
}
