package entity

import (
	"math"
	"sort"
	"strings"
	"time"

	errs "github.com/mensunw/people-bets/internal/domain/error"
)

// MaxLeaderboardSize caps leaderboard reads
const MaxLeaderboardSize = 100

// SettledStake is a stake on a resolved proposition together with that
// proposition's outcome and final pool
type SettledStake struct {
	StakeID       string
	PropositionID string
	UserID        string
	Side          Side
	Amount        int64
	StakedAt      time.Time
	WinningSide   Side
	Totals        PoolTotals
	ResolvedAt    time.Time
}

// Won reports whether the stake backed the winning side
func (s SettledStake) Won() bool {
	return s.Side == s.WinningSide
}

// Winnings recomputes the proportional payout for a winning stake
func (s SettledStake) Winnings() int64 {
	if !s.Won() {
		return 0
	}
	return PayoutShare(s.Amount, s.Totals.SideTotal(s.WinningSide), s.Totals.Pot())
}

// LeaderboardEntry is the derived per-user performance row
type LeaderboardEntry struct {
	UserID        string
	Username      string
	TotalBets     int
	Wins          int
	Losses        int
	WinRate       float64
	TotalWagered  int64
	TotalWinnings int64
	NetProfit     int64
	CurrentStreak int
	BestStreak    int
	UpdatedAt     time.Time
}

// WinRatePercent returns wins/total as a percentage rounded to one decimal
func WinRatePercent(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(total)*1000) / 10
}

// BuildLeaderboard aggregates settled stakes per user. Entries are ordered by
// user id so repeated builds over the same input are identical.
func BuildLeaderboard(settled []SettledStake, now time.Time) []*LeaderboardEntry {
	byUser := make(map[string][]SettledStake)
	for _, s := range settled {
		byUser[s.UserID] = append(byUser[s.UserID], s)
	}

	entries := make([]*LeaderboardEntry, 0, len(byUser))
	for userID, stakes := range byUser {
		sort.SliceStable(stakes, func(i, j int) bool {
			a, b := stakes[i], stakes[j]
			if !a.ResolvedAt.Equal(b.ResolvedAt) {
				return a.ResolvedAt.Before(b.ResolvedAt)
			}
			if !a.StakedAt.Equal(b.StakedAt) {
				return a.StakedAt.Before(b.StakedAt)
			}
			return a.StakeID < b.StakeID
		})

		entry := &LeaderboardEntry{UserID: userID, UpdatedAt: now}
		streak := 0
		for _, s := range stakes {
			entry.TotalBets++
			entry.TotalWagered += s.Amount
			if s.Won() {
				entry.Wins++
				entry.TotalWinnings += s.Winnings()
				streak++
				if streak > entry.BestStreak {
					entry.BestStreak = streak
				}
			} else {
				entry.Losses++
				streak = 0
			}
		}
		entry.CurrentStreak = streak
		entry.NetProfit = entry.TotalWinnings - entry.TotalWagered
		entry.WinRate = WinRatePercent(entry.Wins, entry.TotalBets)
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].UserID < entries[j].UserID })
	return entries
}

// LeaderboardSort names a sortable leaderboard column
type LeaderboardSort string

// Sortable columns
const (
	SortNetProfit     LeaderboardSort = "net_profit"
	SortWinRate       LeaderboardSort = "win_rate"
	SortTotalWins     LeaderboardSort = "total_wins"
	SortCurrentStreak LeaderboardSort = "current_streak"
)

// ParseLeaderboardSort validates a sort key; empty means net_profit
func ParseLeaderboardSort(raw string) (LeaderboardSort, error) {
	switch LeaderboardSort(strings.TrimSpace(raw)) {
	case "", SortNetProfit:
		return SortNetProfit, nil
	case SortWinRate:
		return SortWinRate, nil
	case SortTotalWins:
		return SortTotalWins, nil
	case SortCurrentStreak:
		return SortCurrentStreak, nil
	default:
		return "", errs.NewValidationError("sortBy", "must be one of net_profit, win_rate, total_wins, current_streak")
	}
}

// SortLeaderboard orders entries descending by column, ties by user id
func SortLeaderboard(entries []*LeaderboardEntry, by LeaderboardSort) {
	key := func(e *LeaderboardEntry) float64 {
		switch by {
		case SortWinRate:
			return e.WinRate
		case SortTotalWins:
			return float64(e.Wins)
		case SortCurrentStreak:
			return float64(e.CurrentStreak)
		default:
			return float64(e.NetProfit)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ki, kj := key(entries[i]), key(entries[j])
		if ki != kj {
			return ki > kj
		}
		return entries[i].UserID < entries[j].UserID
	})
}

// ClampLeaderboardLimit maps a requested limit onto 1..MaxLeaderboardSize
func ClampLeaderboardLimit(limit int) int {
	if limit <= 0 || limit > MaxLeaderboardSize {
		return MaxLeaderboardSize
	}
	return limit
}
