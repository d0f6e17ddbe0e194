// Package report renders read models for terminal output.
package report

import (
	"fmt"
	"io"

	"github.com/mensunw/people-bets/internal/domain/entity"
	"github.com/olekukonko/tablewriter"
)

// LeaderboardTable writes ranked leaderboard rows as a text table
type LeaderboardTable struct {
	out io.Writer
}

// NewLeaderboardTable creates a table writer targeting out
func NewLeaderboardTable(out io.Writer) *LeaderboardTable {
	return &LeaderboardTable{out: out}
}

// Write renders entries in the order given, ranked from 1
func (t *LeaderboardTable) Write(sortBy string, entries []*entity.LeaderboardEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(t.out, "leaderboard is empty")
		return err
	}

	fmt.Fprintf(t.out, "top %d by %s\n", len(entries), sortBy)

	table := tablewriter.NewWriter(t.out)
	table.Header("#", "User", "Bets", "W", "L", "Win %", "Wagered", "Winnings", "Net", "Streak", "Best")
	for i, e := range entries {
		if err := table.Append(
			fmt.Sprintf("%d", i+1),
			displayName(e),
			fmt.Sprintf("%d", e.TotalBets),
			fmt.Sprintf("%d", e.Wins),
			fmt.Sprintf("%d", e.Losses),
			fmt.Sprintf("%.2f", e.WinRate),
			fmt.Sprintf("%d", e.TotalWagered),
			fmt.Sprintf("%d", e.TotalWinnings),
			fmt.Sprintf("%+d", e.NetProfit),
			fmt.Sprintf("%d", e.CurrentStreak),
			fmt.Sprintf("%d", e.BestStreak),
		); err != nil {
			return err
		}
	}
	return table.Render()
}

func displayName(e *entity.LeaderboardEntry) string {
	if e.Username != "" {
		return e.Username
	}
	return entity.DefaultUsername(e.UserID)
}
