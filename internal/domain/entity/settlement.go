package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payout is the credit owed to one winning stake
type Payout struct {
	StakeID string `json:"stake_id"`
	UserID  string `json:"user_id"`
	Stake   int64  `json:"stake"`
	Amount  int64  `json:"amount"`
}

// Settlement is the pari-mutuel distribution of a resolved proposition
type Settlement struct {
	PropositionID string     `json:"proposition_id"`
	WinningSide   Side       `json:"winning_side"`
	Totals        PoolTotals `json:"totals"`
	WinningTotal  int64      `json:"winning_total"`
	Payouts       []Payout   `json:"payouts"`
	PaidOut       int64      `json:"paid_out"`
	// Forfeited is the part of the pot nobody received: the whole pot when
	// no one backed the winning side, otherwise the rounding remainder.
	Forfeited int64     `json:"forfeited"`
	SettledAt time.Time `json:"settled_at"`
	// Stakers lists every user with a stake in the pot. It is only set on a
	// freshly computed settlement and is not stored.
	Stakers []string `json:"-"`
}

// NoWinners reports whether the winning side had no stakes
func (s *Settlement) NoWinners() bool {
	return s.WinningTotal == 0
}

// PayoutShare computes floor(amount * pot / winningTotal).
// Returns 0 when winningTotal is 0.
func PayoutShare(amount, winningTotal, pot int64) int64 {
	if winningTotal <= 0 || amount <= 0 {
		return 0
	}
	q, _ := decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(pot)).
		QuoRem(decimal.NewFromInt(winningTotal), 0)
	return q.IntPart()
}

// ComputeSettlement distributes the pot of stakes to those that backed winning.
// Payouts are returned in stake order; the sum never exceeds the pot.
func ComputeSettlement(propositionID string, winning Side, stakes []*Stake, now time.Time) *Settlement {
	totals := TotalsOf(stakes)
	winningTotal := totals.SideTotal(winning)
	pot := totals.Pot()

	settlement := &Settlement{
		PropositionID: propositionID,
		WinningSide:   winning,
		Totals:        totals,
		WinningTotal:  winningTotal,
		Payouts:       []Payout{},
		SettledAt:     now,
		Stakers:       make([]string, 0, len(stakes)),
	}
	for _, s := range stakes {
		settlement.Stakers = append(settlement.Stakers, s.UserID)
	}

	if winningTotal == 0 {
		settlement.Forfeited = pot
		return settlement
	}

	for _, s := range stakes {
		if s.Side != winning {
			continue
		}
		amount := PayoutShare(s.Amount, winningTotal, pot)
		settlement.Payouts = append(settlement.Payouts, Payout{
			StakeID: s.ID,
			UserID:  s.UserID,
			Stake:   s.Amount,
			Amount:  amount,
		})
		settlement.PaidOut += amount
	}
	settlement.Forfeited = pot - settlement.PaidOut

	return settlement
}
