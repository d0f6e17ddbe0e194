package entity

import (
	"testing"
	"time"

	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settled(id, user string, side, winning Side, amount int64, totals PoolTotals, resolvedAt time.Time) SettledStake {
	return SettledStake{
		StakeID:       id,
		PropositionID: "p-" + id,
		UserID:        user,
		Side:          side,
		Amount:        amount,
		StakedAt:      resolvedAt.Add(-time.Hour),
		WinningSide:   winning,
		Totals:        totals,
		ResolvedAt:    resolvedAt,
	}
}

func TestBuildLeaderboard(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2024, 5, d, 20, 0, 0, 0, time.UTC) }
	pool := PoolTotals{TotalOver: 300, TotalUnder: 200, Stakers: 3}

	input := []SettledStake{
		// out of order on purpose; streaks follow resolution time
		settled("s3", "B", SideUnder, SideUnder, 100, pool, day(3)),
		settled("s1", "B", SideUnder, SideUnder, 100, pool, day(1)),
		settled("s2", "B", SideOver, SideUnder, 50, pool, day(2)),
		settled("s4", "B", SideUnder, SideUnder, 100, pool, day(4)),
		settled("s5", "A", SideOver, SideUnder, 300, pool, day(1)),
	}

	entries := BuildLeaderboard(input, now)

	require.Len(t, entries, 2)
	a, b := entries[0], entries[1]

	assert.Equal(t, "A", a.UserID)
	assert.Equal(t, 1, a.TotalBets)
	assert.Equal(t, 0, a.Wins)
	assert.Equal(t, 1, a.Losses)
	assert.Equal(t, int64(-300), a.NetProfit)
	assert.Equal(t, 0.0, a.WinRate)
	assert.Equal(t, 0, a.CurrentStreak)

	assert.Equal(t, "B", b.UserID)
	assert.Equal(t, 4, b.TotalBets)
	assert.Equal(t, 3, b.Wins)
	assert.Equal(t, 1, b.Losses)
	assert.Equal(t, 75.0, b.WinRate)
	assert.Equal(t, int64(350), b.TotalWagered)
	assert.Equal(t, int64(750), b.TotalWinnings)
	assert.Equal(t, int64(400), b.NetProfit)
	assert.Equal(t, 2, b.CurrentStreak)
	assert.Equal(t, 2, b.BestStreak)
	assert.Equal(t, now, b.UpdatedAt)
}

func TestBuildLeaderboardIsIdempotent(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	pool := PoolTotals{TotalOver: 10, TotalUnder: 10, Stakers: 2}
	input := []SettledStake{
		settled("s1", "X", SideOver, SideOver, 10, pool, now.Add(-time.Hour)),
		settled("s2", "Y", SideUnder, SideOver, 10, pool, now.Add(-time.Hour)),
	}

	first := BuildLeaderboard(input, now)
	second := BuildLeaderboard(input, now)

	assert.Equal(t, first, second)
	assert.Empty(t, BuildLeaderboard(nil, now))
}

func TestSortLeaderboard(t *testing.T) {
	entries := []*LeaderboardEntry{
		{UserID: "c", NetProfit: 10, WinRate: 50, Wins: 1, CurrentStreak: 0},
		{UserID: "a", NetProfit: 200, WinRate: 25, Wins: 4, CurrentStreak: 1},
		{UserID: "b", NetProfit: 10, WinRate: 90, Wins: 9, CurrentStreak: 3},
	}

	ids := func() []string {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.UserID)
		}
		return out
	}

	SortLeaderboard(entries, SortNetProfit)
	assert.Equal(t, []string{"a", "b", "c"}, ids())

	SortLeaderboard(entries, SortWinRate)
	assert.Equal(t, []string{"b", "c", "a"}, ids())

	SortLeaderboard(entries, SortTotalWins)
	assert.Equal(t, []string{"b", "a", "c"}, ids())

	SortLeaderboard(entries, SortCurrentStreak)
	assert.Equal(t, []string{"b", "a", "c"}, ids())
}

func TestParseLeaderboardSort(t *testing.T) {
	sortBy, err := ParseLeaderboardSort("")
	require.NoError(t, err)
	assert.Equal(t, SortNetProfit, sortBy)

	sortBy, err = ParseLeaderboardSort("win_rate")
	require.NoError(t, err)
	assert.Equal(t, SortWinRate, sortBy)

	_, err = ParseLeaderboardSort("balance")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestClampLeaderboardLimit(t *testing.T) {
	assert.Equal(t, MaxLeaderboardSize, ClampLeaderboardLimit(0))
	assert.Equal(t, MaxLeaderboardSize, ClampLeaderboardLimit(1000))
	assert.Equal(t, 10, ClampLeaderboardLimit(10))
}
