package usecase

import (
	"context"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// ClaimResult is the outcome of a successful daily grant claim
type ClaimResult struct {
	Amount    int64
	Balance   int64
	ClaimedAt time.Time
}

// GrantUseCase defines daily grant operations
type GrantUseCase interface {
	Status(ctx context.Context, userID string) (*entity.GrantStatus, error)

	// Claim credits the daily grant or returns an AlreadyClaimedError
	Claim(ctx context.Context, userID string) (*ClaimResult, error)
}
