package repository

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const leaderboardBatchSize = 500

// sortColumns maps sort keys onto columns. Only these strings reach ORDER BY.
var sortColumns = map[entity.LeaderboardSort]string{
	entity.SortNetProfit:     "le.net_profit",
	entity.SortWinRate:       "le.win_rate",
	entity.SortTotalWins:     "le.wins",
	entity.SortCurrentStreak: "le.current_streak",
}

// LeaderboardRepository implements persistence.LeaderboardRepository using GORM
type LeaderboardRepository struct {
	base
}

// NewLeaderboardRepository creates a new LeaderboardRepository instance
func NewLeaderboardRepository(db *gorm.DB, logger coreport.Logger) *LeaderboardRepository {
	return &LeaderboardRepository{base: newBase(db, logger)}
}

// ReplaceAll swaps the table contents for entries. Callers run it inside a
// transaction so readers never observe a half-written table.
func (r *LeaderboardRepository) ReplaceAll(ctx context.Context, entries []*entity.LeaderboardEntry) error {
	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.LeaderboardEntry{}).Error; err != nil {
		return r.handleDatabaseError("clearing leaderboard", err, errs.ErrNotFound, nil)
	}
	if len(entries) == 0 {
		return nil
	}

	rows := make([]model.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, model.LeaderboardEntry{
			UserID:        e.UserID,
			TotalBets:     e.TotalBets,
			Wins:          e.Wins,
			Losses:        e.Losses,
			WinRate:       e.WinRate,
			TotalWagered:  e.TotalWagered,
			TotalWinnings: e.TotalWinnings,
			NetProfit:     e.NetProfit,
			CurrentStreak: e.CurrentStreak,
			BestStreak:    e.BestStreak,
			UpdatedAt:     e.UpdatedAt,
		})
	}
	if err := db.CreateInBatches(rows, leaderboardBatchSize).Error; err != nil {
		return r.handleDatabaseError("writing leaderboard", err, errs.ErrNotFound, map[string]any{"rows": len(rows)})
	}
	return nil
}

type leaderboardRow struct {
	model.LeaderboardEntry
	Username string
}

// Top returns up to limit rows ordered by sortBy with usernames joined in
func (r *LeaderboardRepository) Top(ctx context.Context, sortBy entity.LeaderboardSort, limit int) ([]*entity.LeaderboardEntry, error) {
	column, ok := sortColumns[sortBy]
	if !ok {
		return nil, errs.NewValidationError("sortBy", "unsupported sort column")
	}

	query := r.db.WithContext(ctx).
		Table("leaderboard_entries AS le").
		Select("le.*, COALESCE(u.username, '') AS username").
		Joins("LEFT JOIN users u ON u.id = le.user_id").
		Order(column + " DESC, le.user_id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []leaderboardRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("reading leaderboard", err, errs.ErrNotFound,
			map[string]any{"sort_by": string(sortBy), "limit": limit})
	}

	entries := make([]*entity.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.LeaderboardEntry{
			UserID:        row.UserID,
			Username:      row.Username,
			TotalBets:     row.TotalBets,
			Wins:          row.Wins,
			Losses:        row.Losses,
			WinRate:       row.WinRate,
			TotalWagered:  row.TotalWagered,
			TotalWinnings: row.TotalWinnings,
			NetProfit:     row.NetProfit,
			CurrentStreak: row.CurrentStreak,
			BestStreak:    row.BestStreak,
			UpdatedAt:     row.UpdatedAt,
		})
	}
	return entries, nil
}
