package dto

import (
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// LeaderboardEntryResponse is one ranked row
type LeaderboardEntryResponse struct {
	Rank          int       `json:"rank"`
	UserID        string    `json:"userId"`
	Username      string    `json:"username"`
	TotalBets     int       `json:"totalBets"`
	Wins          int       `json:"wins"`
	Losses        int       `json:"losses"`
	WinRate       float64   `json:"winRate"`
	TotalWagered  int64     `json:"totalWagered"`
	TotalWinnings int64     `json:"totalWinnings"`
	NetProfit     int64     `json:"netProfit"`
	CurrentStreak int       `json:"currentStreak"`
	BestStreak    int       `json:"bestStreak"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LeaderboardResponse is the ranked list for one sort key
type LeaderboardResponse struct {
	SortBy  string                     `json:"sortBy"`
	Entries []LeaderboardEntryResponse `json:"entries"`
}

// RebuildResponse reports how many rows a rebuild wrote
type RebuildResponse struct {
	Updated int `json:"updated"`
}

// NewLeaderboardResponse ranks entries in the order given, starting at 1
func NewLeaderboardResponse(sortBy string, entries []*entity.LeaderboardEntry) LeaderboardResponse {
	out := make([]LeaderboardEntryResponse, 0, len(entries))
	for i, e := range entries {
		out = append(out, LeaderboardEntryResponse{
			Rank:          i + 1,
			UserID:        e.UserID,
			Username:      e.Username,
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
	return LeaderboardResponse{SortBy: sortBy, Entries: out}
}
