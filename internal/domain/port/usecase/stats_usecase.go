package usecase

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// StatsResult is a statistics document and its content hash
type StatsResult struct {
	Stats *entity.UserStats
	ETag  string
}

// StatsUseCase defines per-user statistics
type StatsUseCase interface {
	// GetUserStats aggregates the user's stakes over the last rangeDays days
	GetUserStats(ctx context.Context, userID string, rangeDays int) (*StatsResult, error)
}
