package usecase

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// PlaceStakeResult carries everything the caller needs after a stake, so no re-query is required
type PlaceStakeResult struct {
	Stake   *entity.Stake
	Balance int64
	Totals  entity.PoolTotals
	Odds    entity.Odds
}

// StakeUseCase defines stake placement and pool reads
type StakeUseCase interface {
	// PlaceStake debits the user and records a stake on one side of the proposition
	PlaceStake(ctx context.Context, propositionID, userID, side, amount string) (*PlaceStakeResult, error)

	// GetTotals returns the current pool of a proposition
	GetTotals(ctx context.Context, propositionID string) (entity.PoolTotals, error)
}
