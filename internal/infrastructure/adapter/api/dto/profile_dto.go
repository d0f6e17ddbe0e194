package dto

import (
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// BootstrapProfileRequest is the optional body of POST /api/v1/profile
type BootstrapProfileRequest struct {
	Username string `json:"username" binding:"omitempty,max=50"`
}

// ProfileResponse represents a user's profile and balance
type ProfileResponse struct {
	UserID        string     `json:"userId"`
	Username      string     `json:"username"`
	Email         string     `json:"email,omitempty"`
	Balance       int64      `json:"balance"`
	LastClaimDate *time.Time `json:"lastClaimDate,omitempty"`
	CanClaimGrant bool       `json:"canClaimGrant"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NewProfileResponse converts a profile; email comes from the caller's token
func NewProfileResponse(p *entity.Profile, email string) ProfileResponse {
	return ProfileResponse{
		UserID:        p.UserID,
		Username:      p.Username,
		Email:         email,
		Balance:       p.Balance,
		LastClaimDate: p.LastClaimDate,
		CanClaimGrant: p.CanClaimGrant,
		CreatedAt:     p.CreatedAt,
	}
}
