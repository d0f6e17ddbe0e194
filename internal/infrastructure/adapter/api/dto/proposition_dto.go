package dto

import (
	"encoding/json"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
)

// CreatePropositionRequest is the body of POST /api/v1/propositions.
// Target accepts a JSON number or a numeric string.
type CreatePropositionRequest struct {
	Title       string      `json:"title" binding:"required"`
	Description string      `json:"description" binding:"required"`
	Target      json.Number `json:"target" binding:"required"`
	GroupID     string      `json:"groupId" binding:"required"`
	WindowEnd   time.Time   `json:"windowEnd" binding:"required"`
}

// PlaceStakeRequest is the body of POST /api/v1/propositions/:propositionId/stakes
type PlaceStakeRequest struct {
	Side   string      `json:"side" binding:"required"`
	Amount json.Number `json:"amount" binding:"required"`
}

// ResolveRequest is the body of POST /api/v1/propositions/:propositionId/resolve
type ResolveRequest struct {
	WinningSide string `json:"winningSide" binding:"required"`
}

// TotalsResponse is the pool of a proposition
type TotalsResponse struct {
	TotalOver  int64 `json:"totalOver"`
	TotalUnder int64 `json:"totalUnder"`
	Pot        int64 `json:"pot"`
	Stakers    int   `json:"stakers"`
}

// OddsResponse is each side's share of the pot in percent
type OddsResponse struct {
	OverPct  float64 `json:"overPct"`
	UnderPct float64 `json:"underPct"`
}

// StakeResponse represents one stake
type StakeResponse struct {
	ID            string    `json:"id"`
	PropositionID string    `json:"propositionId"`
	UserID        string    `json:"userId"`
	Side          string    `json:"side"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PropositionResponse is a proposition as seen by the caller
type PropositionResponse struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Target            string         `json:"target"`
	GroupID           string         `json:"groupId"`
	CreatorID         string         `json:"creatorId"`
	WindowEnd         time.Time      `json:"windowEnd"`
	Status            string         `json:"status"`
	WinningSide       *string        `json:"winningSide,omitempty"`
	ResolvedAt        *time.Time     `json:"resolvedAt,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	Totals            TotalsResponse `json:"totals"`
	Odds              OddsResponse   `json:"odds"`
	MyStake           *StakeResponse `json:"myStake,omitempty"`
	PotentialWinnings int64          `json:"potentialWinnings"`
}

// PropositionListResponse wraps a list of propositions
type PropositionListResponse struct {
	Propositions []PropositionResponse `json:"propositions"`
}

// PlaceStakeResponse is returned after a stake is accepted
type PlaceStakeResponse struct {
	Stake   StakeResponse  `json:"stake"`
	Balance int64          `json:"balance"`
	Totals  TotalsResponse `json:"totals"`
	Odds    OddsResponse   `json:"odds"`
}

// PayoutResponse is one winner's share
type PayoutResponse struct {
	StakeID string `json:"stakeId"`
	UserID  string `json:"userId"`
	Stake   int64  `json:"stake"`
	Amount  int64  `json:"amount"`
}

// SettlementResponse summarizes how a pool was paid out
type SettlementResponse struct {
	PropositionID string           `json:"propositionId"`
	WinningSide   string           `json:"winningSide"`
	Totals        TotalsResponse   `json:"totals"`
	WinningTotal  int64            `json:"winningTotal"`
	PaidOut       int64            `json:"paidOut"`
	Forfeited     int64            `json:"forfeited"`
	Payouts       []PayoutResponse `json:"payouts"`
	SettledAt     time.Time        `json:"settledAt"`
}

// ResolveResponse is the outcome of a resolution
type ResolveResponse struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Settlement *SettlementResponse `json:"settlement,omitempty"`
}

// NewTotalsResponse converts pool totals
func NewTotalsResponse(t entity.PoolTotals) TotalsResponse {
	return TotalsResponse{TotalOver: t.TotalOver, TotalUnder: t.TotalUnder, Pot: t.Pot(), Stakers: t.Stakers}
}

// NewOddsResponse converts odds
func NewOddsResponse(o entity.Odds) OddsResponse {
	return OddsResponse{OverPct: o.OverPct, UnderPct: o.UnderPct}
}

// NewStakeResponse converts a stake
func NewStakeResponse(s *entity.Stake) StakeResponse {
	return StakeResponse{
		ID:            s.ID,
		PropositionID: s.PropositionID,
		UserID:        s.UserID,
		Side:          string(s.Side),
		Amount:        s.Amount,
		CreatedAt:     s.CreatedAt,
	}
}

// NewPropositionResponse converts a proposition view
func NewPropositionResponse(v *usecase.PropositionView) PropositionResponse {
	p := v.Proposition
	resp := PropositionResponse{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		Target:            p.Target.String(),
		GroupID:           p.GroupID,
		CreatorID:         p.CreatorID,
		WindowEnd:         p.WindowEnd,
		Status:            string(v.Status),
		ResolvedAt:        p.ResolvedAt,
		CreatedAt:         p.CreatedAt,
		Totals:            NewTotalsResponse(v.Totals),
		Odds:              NewOddsResponse(v.Odds),
		PotentialWinnings: v.PotentialWinnings,
	}
	if p.WinningSide != nil {
		side := string(*p.WinningSide)
		resp.WinningSide = &side
	}
	if v.MyStake != nil {
		stake := NewStakeResponse(v.MyStake)
		resp.MyStake = &stake
	}
	return resp
}

// NewPropositionListResponse converts a list of proposition views
func NewPropositionListResponse(views []*usecase.PropositionView) PropositionListResponse {
	out := make([]PropositionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewPropositionResponse(v))
	}
	return PropositionListResponse{Propositions: out}
}

// NewPlaceStakeResponse converts a stake placement result
func NewPlaceStakeResponse(r *usecase.PlaceStakeResult) PlaceStakeResponse {
	return PlaceStakeResponse{
		Stake:   NewStakeResponse(r.Stake),
		Balance: r.Balance,
		Totals:  NewTotalsResponse(r.Totals),
		Odds:    NewOddsResponse(r.Odds),
	}
}

// NewSettlementResponse converts a settlement
func NewSettlementResponse(s *entity.Settlement) *SettlementResponse {
	if s == nil {
		return nil
	}
	payouts := make([]PayoutResponse, 0, len(s.Payouts))
	for _, p := range s.Payouts {
		payouts = append(payouts, PayoutResponse{StakeID: p.StakeID, UserID: p.UserID, Stake: p.Stake, Amount: p.Amount})
	}
	return &SettlementResponse{
		PropositionID: s.PropositionID,
		WinningSide:   string(s.WinningSide),
		Totals:        NewTotalsResponse(s.Totals),
		WinningTotal:  s.WinningTotal,
		PaidOut:       s.PaidOut,
		Forfeited:     s.Forfeited,
		Payouts:       payouts,
		SettledAt:     s.SettledAt,
	}
}

// NewResolveResponse converts a resolution result
func NewResolveResponse(r *usecase.ResolveResult) ResolveResponse {
	return ResolveResponse{
		Success:    r.Success,
		Message:    r.Message,
		Settlement: NewSettlementResponse(r.Settlement),
	}
}
