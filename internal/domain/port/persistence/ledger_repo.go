package persistence

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// LedgerRepository stores the append-only record of balance movements
type LedgerRepository interface {
	// Create appends an entry
	//
	// Possible errors:
	// - ErrDuplicateKey: If an entry with the same reference already exists
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// ExistsByReference checks whether a movement was already recorded.
	// Used for idempotency of grants and payouts.
	ExistsByReference(ctx context.Context, reference string) (bool, error)

	// ListByUser returns a user's most recent entries, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.LedgerEntry, error)
}
