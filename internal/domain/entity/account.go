package entity

import "time"

// Profile is the caller-facing view of a user with grant eligibility
type Profile struct {
	UserID        string     `json:"userId"`
	Username      string     `json:"username"`
	Balance       int64      `json:"balance"`
	LastClaimDate *time.Time `json:"lastClaimDate,omitempty"`
	CanClaimGrant bool       `json:"canClaimGrant"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// UserToProfile converts a User entity to a Profile view at now.
func UserToProfile(user *User, now time.Time) Profile {
	return Profile{
		UserID:        user.ID,
		Username:      user.Username,
		Balance:       user.Balance(),
		LastClaimDate: user.LastClaimDate,
		CanClaimGrant: CanClaim(user.LastClaimDate, now),
		CreatedAt:     user.CreatedAt,
	}
}
