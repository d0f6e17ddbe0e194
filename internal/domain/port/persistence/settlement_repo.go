package persistence

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// SettlementRepository stores the audit record written when a proposition resolves
type SettlementRepository interface {
	// Create returns ErrDuplicateKey when the proposition was already settled
	Create(ctx context.Context, settlement *entity.Settlement) error

	// GetByProposition returns ErrNotFound when no settlement exists
	GetByProposition(ctx context.Context, propositionID string) (*entity.Settlement, error)
}
