package persistence

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// PropositionRepository stores propositions
type PropositionRepository interface {
	Create(ctx context.Context, proposition *entity.Proposition) error

	// GetByID returns ErrPropositionNotFound when the proposition does not exist
	GetByID(ctx context.Context, id string) (*entity.Proposition, error)

	// GetForUpdate locks the proposition row for the rest of the transaction.
	// Stake placement and resolution both take this lock, which serializes
	// a stake against a concurrent resolve.
	GetForUpdate(ctx context.Context, id string) (*entity.Proposition, error)

	// Update persists status, winning side and resolution time
	Update(ctx context.Context, proposition *entity.Proposition) error

	// ListByGroup returns a group's propositions, newest first
	ListByGroup(ctx context.Context, groupID string) ([]*entity.Proposition, error)
}
