package usecase

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// ProfileUseCase defines methods for profile bootstrap and lookup
type ProfileUseCase interface {
	// Bootstrap returns the caller's profile, creating it with the initial
	// balance and Global membership on first use. Safe to call repeatedly.
	Bootstrap(ctx context.Context, identity entity.Identity, usernameHint string) (*entity.Profile, error)

	// GetProfile returns ErrUserNotFound until Bootstrap has run for userID
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
}
