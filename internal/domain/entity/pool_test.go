package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolTotals(t *testing.T) {
	stakes := []*Stake{
		stake("s1", "A", SideOver, 300),
		stake("s2", "B", SideUnder, 100),
		stake("s3", "C", SideUnder, 100),
	}

	totals := TotalsOf(stakes)

	assert.Equal(t, PoolTotals{TotalOver: 300, TotalUnder: 200, Stakers: 3}, totals)
	assert.Equal(t, int64(500), totals.Pot())
	assert.Equal(t, Odds{OverPct: 60, UnderPct: 40}, totals.Odds())
	assert.Equal(t, int64(250), totals.PotentialPayout(SideUnder, 100))
	assert.Equal(t, int64(500), totals.PotentialPayout(SideOver, 300))
}

func TestPoolOddsEmptyPool(t *testing.T) {
	assert.Equal(t, Odds{OverPct: 50, UnderPct: 50}, PoolTotals{}.Odds())
}

func TestPoolOddsOneSided(t *testing.T) {
	odds := PoolTotals{TotalOver: 0, TotalUnder: 70, Stakers: 1}.Odds()

	assert.Equal(t, 0.0, odds.OverPct)
	assert.Equal(t, 100.0, odds.UnderPct)
}

func TestPoolAdd(t *testing.T) {
	totals := PoolTotals{TotalOver: 10, Stakers: 1}

	totals = totals.Add(stake("s2", "B", SideUnder, 40), true)

	assert.Equal(t, PoolTotals{TotalOver: 10, TotalUnder: 40, Stakers: 2}, totals)
}
