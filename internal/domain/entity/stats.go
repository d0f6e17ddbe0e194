package entity

import (
	"sort"
	"time"
)

// Stats range limits, in days
const (
	DefaultStatsRangeDays = 30
	MaxStatsRangeDays     = 365
)

// StakeRecord is one of a user's stakes with whatever outcome is known
type StakeRecord struct {
	StakeID     string
	Amount      int64
	Side        Side
	StakedAt    time.Time
	Resolved    bool
	WinningSide Side
	Totals      PoolTotals
}

// DailyStat aggregates one UTC calendar day of staking
type DailyStat struct {
	Date         string `json:"date"`
	TotalWagered int64  `json:"total_wagered"`
	TotalWon     int64  `json:"total_won"`
	NetProfit    int64  `json:"net_profit"`
	BetsPlaced   int    `json:"bets_placed"`
	BetsWon      int    `json:"bets_won"`
}

// CumulativeStat is the running total up to and including Date
type CumulativeStat struct {
	Date              string  `json:"date"`
	CumulativeProfit  int64   `json:"cumulative_profit"`
	CumulativeWagered int64   `json:"cumulative_wagered"`
	CumulativeBets    int     `json:"cumulative_bets"`
	WinRate           float64 `json:"win_rate"`
}

// OverallStat summarizes the whole window
type OverallStat struct {
	TotalBets     int     `json:"total_bets"`
	TotalWins     int     `json:"total_wins"`
	TotalLosses   int     `json:"total_losses"`
	TotalWagered  int64   `json:"total_wagered"`
	TotalWinnings int64   `json:"total_winnings"`
	NetProfit     int64   `json:"net_profit"`
	WinRate       float64 `json:"win_rate"`
	BestWin       int64   `json:"best_win"`
	WorstLoss     int64   `json:"worst_loss"`
}

// MonthlyStat aggregates one calendar month
type MonthlyStat struct {
	Month  string `json:"month"`
	Bets   int    `json:"bets"`
	Wins   int    `json:"wins"`
	Profit int64  `json:"profit"`
}

// UserStats is the statistics document returned for a user and window
type UserStats struct {
	DailyStats         []DailyStat      `json:"daily_stats"`
	CumulativeStats    []CumulativeStat `json:"cumulative_stats"`
	OverallStats       OverallStat      `json:"overall_stats"`
	MonthlyPerformance []MonthlyStat    `json:"monthly_performance"`
}

// StatsWindowStart returns the inclusive lower bound of a rolling window
func StatsWindowStart(now time.Time, rangeDays int) time.Time {
	return now.AddDate(0, 0, -rangeDays)
}

// BuildUserStats aggregates records into daily, cumulative, overall and monthly views.
// Unresolved stakes count as placed and wagered but neither won nor lost.
func BuildUserStats(records []StakeRecord) *UserStats {
	sorted := make([]StakeRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StakedAt.Before(sorted[j].StakedAt) })

	daily := make(map[string]*DailyStat)
	monthly := make(map[string]*MonthlyStat)
	var overall OverallStat

	for _, r := range sorted {
		date := r.StakedAt.UTC().Format("2006-01-02")
		month := date[:7]

		d, ok := daily[date]
		if !ok {
			d = &DailyStat{Date: date}
			daily[date] = d
		}
		m, ok := monthly[month]
		if !ok {
			m = &MonthlyStat{Month: month}
			monthly[month] = m
		}

		d.BetsPlaced++
		d.TotalWagered += r.Amount
		m.Bets++
		overall.TotalBets++
		overall.TotalWagered += r.Amount

		if !r.Resolved {
			continue
		}

		var profit int64
		if r.Side == r.WinningSide {
			winnings := PayoutShare(r.Amount, r.Totals.SideTotal(r.WinningSide), r.Totals.Pot())
			profit = winnings - r.Amount
			d.BetsWon++
			d.TotalWon += winnings
			m.Wins++
			overall.TotalWins++
			overall.TotalWinnings += winnings
			if profit > overall.BestWin {
				overall.BestWin = profit
			}
		} else {
			profit = -r.Amount
			overall.TotalLosses++
			if profit < overall.WorstLoss {
				overall.WorstLoss = profit
			}
		}
		d.NetProfit += profit
		m.Profit += profit
	}

	stats := &UserStats{
		DailyStats:         make([]DailyStat, 0, len(daily)),
		CumulativeStats:    make([]CumulativeStat, 0, len(daily)),
		MonthlyPerformance: make([]MonthlyStat, 0, len(monthly)),
	}
	for _, d := range daily {
		stats.DailyStats = append(stats.DailyStats, *d)
	}
	sort.Slice(stats.DailyStats, func(i, j int) bool { return stats.DailyStats[i].Date < stats.DailyStats[j].Date })

	var cumProfit, cumWagered int64
	var cumBets, cumWins int
	for _, d := range stats.DailyStats {
		cumProfit += d.NetProfit
		cumWagered += d.TotalWagered
		cumBets += d.BetsPlaced
		cumWins += d.BetsWon
		stats.CumulativeStats = append(stats.CumulativeStats, CumulativeStat{
			Date:              d.Date,
			CumulativeProfit:  cumProfit,
			CumulativeWagered: cumWagered,
			CumulativeBets:    cumBets,
			WinRate:           WinRatePercent(cumWins, cumBets),
		})
	}

	for _, m := range monthly {
		stats.MonthlyPerformance = append(stats.MonthlyPerformance, *m)
	}
	sort.Slice(stats.MonthlyPerformance, func(i, j int) bool {
		return stats.MonthlyPerformance[i].Month < stats.MonthlyPerformance[j].Month
	})

	overall.NetProfit = overall.TotalWinnings - overall.TotalWagered
	overall.WinRate = WinRatePercent(overall.TotalWins, overall.TotalBets)
	stats.OverallStats = overall

	return stats
}
