package entity

import (
	"time"
)

// DailyGrantAmount is credited once per UTC calendar day
const DailyGrantAmount int64 = 500

// GrantStatus describes a user's eligibility for the daily grant
type GrantStatus struct {
	CanClaim    bool
	NextClaimAt time.Time     // zero when CanClaim is true
	Remaining   time.Duration // zero when CanClaim is true
	Amount      int64
}

// startOfUTCDay truncates t to midnight UTC of its calendar day
func startOfUTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextClaimAt is the UTC midnight following the day of lastClaim
func NextClaimAt(lastClaim time.Time) time.Time {
	return startOfUTCDay(lastClaim).AddDate(0, 0, 1)
}

// CanClaim reports whether a grant may be issued at now.
// Eligibility resets at UTC midnight, not on a rolling 24h window.
func CanClaim(lastClaim *time.Time, now time.Time) bool {
	if lastClaim == nil {
		return true
	}
	return !now.Before(NextClaimAt(*lastClaim))
}

// GrantStatusAt computes the grant status for lastClaim at now
func GrantStatusAt(lastClaim *time.Time, now time.Time) GrantStatus {
	if CanClaim(lastClaim, now) {
		return GrantStatus{CanClaim: true, Amount: DailyGrantAmount}
	}
	next := NextClaimAt(*lastClaim)
	return GrantStatus{
		CanClaim:    false,
		NextClaimAt: next,
		Remaining:   next.Sub(now),
		Amount:      DailyGrantAmount,
	}
}

// GrantReference is the ledger reference that makes a grant unique per user and UTC day
func GrantReference(userID string, now time.Time) string {
	return "grant:" + userID + ":" + now.UTC().Format("2006-01-02")
}
