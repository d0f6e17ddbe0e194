package usecase

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// LeaderboardUseCase defines leaderboard maintenance and reads
type LeaderboardUseCase interface {
	// Rebuild recomputes every row from settled stakes and returns the row count
	Rebuild(ctx context.Context) (int, error)

	// Top returns up to limit rows ordered by sortBy
	Top(ctx context.Context, sortBy string, limit int) ([]*entity.LeaderboardEntry, error)
}
