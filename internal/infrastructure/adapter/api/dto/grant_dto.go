package dto

import (
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// GrantStatusResponse tells the caller whether the daily grant can be claimed
type GrantStatusResponse struct {
	CanClaim         bool       `json:"canClaim"`
	Amount           int64      `json:"amount"`
	NextClaimAt      *time.Time `json:"nextClaimAt,omitempty"`
	RemainingSeconds int64      `json:"remainingSeconds"`
}

// ClaimResponse is the result of POST /api/v1/daily-grant/claim.
// A refused claim carries Message and NextClaimAt instead of Amount and Balance.
type ClaimResponse struct {
	Success     bool       `json:"success"`
	Amount      int64      `json:"amount,omitempty"`
	Balance     int64      `json:"balance,omitempty"`
	Message     string     `json:"message,omitempty"`
	NextClaimAt *time.Time `json:"nextClaimAt,omitempty"`
}

// NewGrantStatusResponse converts a grant status
func NewGrantStatusResponse(s *entity.GrantStatus) GrantStatusResponse {
	resp := GrantStatusResponse{
		CanClaim:         s.CanClaim,
		Amount:           s.Amount,
		RemainingSeconds: int64(s.Remaining.Seconds()),
	}
	if !s.NextClaimAt.IsZero() {
		next := s.NextClaimAt
		resp.NextClaimAt = &next
	}
	return resp
}
