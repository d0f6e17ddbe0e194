package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanClaim(t *testing.T) {
	last := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	midnight := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		last     *time.Time
		now      time.Time
		expected bool
	}{
		{"never claimed", nil, last, true},
		{"same instant", &last, last, false},
		{"one nanosecond before midnight", &last, midnight.Add(-time.Nanosecond), false},
		{"exactly midnight", &last, midnight, true},
		{"next afternoon", &last, midnight.Add(15 * time.Hour), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanClaim(tc.last, tc.now))
		})
	}
}

func TestCanClaimUsesUTCDay(t *testing.T) {
	// 20:00 in New York on March 1st is already March 2nd in UTC
	ny := time.FixedZone("EST", -5*3600)
	last := time.Date(2024, 3, 1, 20, 0, 0, 0, ny)

	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), NextClaimAt(last))
	assert.False(t, CanClaim(&last, time.Date(2024, 3, 2, 23, 0, 0, 0, time.UTC)))
}

func TestGrantStatusAt(t *testing.T) {
	last := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 22, 30, 0, 0, time.UTC)

	status := GrantStatusAt(&last, now)

	assert.False(t, status.CanClaim)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), status.NextClaimAt)
	assert.Equal(t, 90*time.Minute, status.Remaining)
	assert.Equal(t, DailyGrantAmount, status.Amount)

	eligible := GrantStatusAt(nil, now)
	assert.True(t, eligible.CanClaim)
	assert.Zero(t, eligible.Remaining)
}

func TestGrantReference(t *testing.T) {
	now := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "grant:u1:2024-03-01", GrantReference("u1", now))
	assert.NotEqual(t, GrantReference("u1", now), GrantReference("u1", now.Add(time.Minute)))
}
