package persistence

import (
	"context"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// StakeRepository stores stakes and answers the pool and history queries built on them
type StakeRepository interface {
	// Create stores a stake
	//
	// Possible errors:
	// - ErrDuplicateStake: If the user already staked on this proposition
	Create(ctx context.Context, stake *entity.Stake) error

	// GetByUserAndProposition returns ErrNotFound when the user has no stake
	GetByUserAndProposition(ctx context.Context, propositionID, userID string) (*entity.Stake, error)

	// ListByProposition returns stakes in placement order
	ListByProposition(ctx context.Context, propositionID string) ([]*entity.Stake, error)

	// TotalsByPropositions aggregates pools for several propositions at once.
	// Propositions without stakes map to zero totals.
	TotalsByPropositions(ctx context.Context, propositionIDs []string) (map[string]entity.PoolTotals, error)

	// ListSettled returns every stake on a resolved proposition together with the final pool
	ListSettled(ctx context.Context) ([]entity.SettledStake, error)

	// ListByUserSince returns a user's stakes placed at or after since, oldest first
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]entity.StakeRecord, error)
}
