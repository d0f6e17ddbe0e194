package entity

import "math"

// PoolTotals aggregates the stakes on a proposition
type PoolTotals struct {
	TotalOver  int64 `json:"total_over"`
	TotalUnder int64 `json:"total_under"`
	Stakers    int   `json:"stakers"`
}

// Odds is the display split of the pool between sides, in percent
type Odds struct {
	OverPct  float64 `json:"over_pct"`
	UnderPct float64 `json:"under_pct"`
}

// TotalsOf sums stakes by side. Each stake belongs to a distinct user.
func TotalsOf(stakes []*Stake) PoolTotals {
	var totals PoolTotals
	users := make(map[string]struct{}, len(stakes))
	for _, s := range stakes {
		switch s.Side {
		case SideOver:
			totals.TotalOver += s.Amount
		case SideUnder:
			totals.TotalUnder += s.Amount
		}
		users[s.UserID] = struct{}{}
	}
	totals.Stakers = len(users)
	return totals
}

// Pot is the combined pool of both sides
func (t PoolTotals) Pot() int64 {
	return t.TotalOver + t.TotalUnder
}

// SideTotal returns the pool on one side
func (t PoolTotals) SideTotal(side Side) int64 {
	if side == SideOver {
		return t.TotalOver
	}
	return t.TotalUnder
}

// Add returns the totals with one more stake applied
func (t PoolTotals) Add(stake *Stake, newStaker bool) PoolTotals {
	if stake.Side == SideOver {
		t.TotalOver += stake.Amount
	} else {
		t.TotalUnder += stake.Amount
	}
	if newStaker {
		t.Stakers++
	}
	return t
}

// Odds splits the pool; an empty pool reports 50/50
func (t PoolTotals) Odds() Odds {
	pot := t.Pot()
	if pot == 0 {
		return Odds{OverPct: 50, UnderPct: 50}
	}
	over := math.Round(float64(t.TotalOver)/float64(pot)*1000) / 10
	return Odds{OverPct: over, UnderPct: math.Round((100-over)*10) / 10}
}

// PotentialPayout is what an existing stake would collect if its side won
// against the current pool
func (t PoolTotals) PotentialPayout(side Side, amount int64) int64 {
	return PayoutShare(amount, t.SideTotal(side), t.Pot())
}
