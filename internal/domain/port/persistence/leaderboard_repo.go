package persistence

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// LeaderboardRepository stores the derived leaderboard table
type LeaderboardRepository interface {
	// ReplaceAll swaps the stored rows for entries in one write
	ReplaceAll(ctx context.Context, entries []*entity.LeaderboardEntry) error

	// Top returns up to limit rows ordered by sortBy, with usernames filled in
	Top(ctx context.Context, sortBy entity.LeaderboardSort, limit int) ([]*entity.LeaderboardEntry, error)
}
