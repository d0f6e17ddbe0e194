package usecase

import (
	"context"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// CreatePropositionInput is the unvalidated input for a new proposition
type CreatePropositionInput struct {
	Title       string
	Description string
	Target      string
	GroupID     string
	WindowEnd   time.Time
}

// PropositionView is a proposition as seen by one viewer at one instant
type PropositionView struct {
	Proposition *entity.Proposition
	Status      entity.PropositionStatus
	Totals      entity.PoolTotals
	Odds        entity.Odds
	// MyStake is nil when the viewer has not staked
	MyStake *entity.Stake
	// PotentialWinnings is what MyStake would collect against the current pool
	PotentialWinnings int64
}

// ResolveResult reports the outcome of a resolution together with its settlement
type ResolveResult struct {
	Success    bool
	Message    string
	Settlement *entity.Settlement
}

// PropositionUseCase defines the proposition lifecycle operations
type PropositionUseCase interface {
	CreateProposition(ctx context.Context, creatorID string, input CreatePropositionInput) (*entity.Proposition, error)
	GetProposition(ctx context.Context, propositionID, viewerID string) (*PropositionView, error)

	// ListByGroup returns the group's propositions, newest first
	ListByGroup(ctx context.Context, groupID, viewerID string) ([]*PropositionView, error)

	// Resolve records the winning side and settles the pool in one transaction
	Resolve(ctx context.Context, propositionID, requesterID, winningSide string) (*ResolveResult, error)
}
