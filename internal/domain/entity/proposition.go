package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Side is one half of a binary over/under proposition
type Side string

// Sides
const (
	SideOver  Side = "over"
	SideUnder Side = "under"
)

// ParseSide validates a side string
func ParseSide(raw string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(raw))) {
	case SideOver:
		return SideOver, nil
	case SideUnder:
		return SideUnder, nil
	default:
		return "", errs.NewValidationError("side", "must be over or under")
	}
}

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideOver {
		return SideUnder
	}
	return SideOver
}

// PropositionStatus is the lifecycle state of a proposition
type PropositionStatus string

// Lifecycle states. Closed is never persisted; it is derived from the deadline.
const (
	StatusOpen     PropositionStatus = "open"
	StatusClosed   PropositionStatus = "closed"
	StatusResolved PropositionStatus = "resolved"
)

// Proposition validation limits
const (
	MinTitleLength       = 3
	MaxTitleLength       = 200
	MinDescriptionLength = 10
)

// Proposition is an over/under wager definition owned by a group
type Proposition struct {
	ID          string
	Title       string
	Description string
	Target      decimal.Decimal
	GroupID     string
	CreatorID   string
	WindowEnd   time.Time
	Status      PropositionStatus
	WinningSide *Side
	ResolvedAt  *time.Time
	CreatedAt   time.Time
}

// NewPropositionParams carries unvalidated creation input
type NewPropositionParams struct {
	Title       string
	Description string
	Target      string
	CreatorID   string
	WindowEnd   time.Time
}

// NewProposition validates params against group and now and returns an open proposition
func NewProposition(params NewPropositionParams, group *Group, now time.Time) (*Proposition, error) {
	title := strings.TrimSpace(params.Title)
	if utf8.RuneCountInString(title) < MinTitleLength {
		return nil, errs.NewValidationError("title", "must be at least 3 characters")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, errs.NewValidationError("title", "too long")
	}

	description := strings.TrimSpace(params.Description)
	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return nil, errs.NewValidationError("description", "must be at least 10 characters")
	}

	target, err := ParseTarget(params.Target)
	if err != nil {
		return nil, err
	}

	if !params.WindowEnd.After(now) {
		return nil, errs.NewValidationError("window_end", "must be in the future")
	}

	if group == nil {
		return nil, errs.ErrGroupNotFound
	}
	if !group.CanCreatePropositions(params.CreatorID) {
		return nil, errs.NewAuthorizationError(params.CreatorID, "create proposition",
			"only the group leader can create propositions")
	}

	return &Proposition{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Target:      target,
		GroupID:     group.ID,
		CreatorID:   params.CreatorID,
		WindowEnd:   params.WindowEnd.UTC(),
		Status:      StatusOpen,
		CreatedAt:   now,
	}, nil
}

// IsBettable reports whether stakes are accepted at now
func (p *Proposition) IsBettable(now time.Time) bool {
	return p.Status == StatusOpen && now.Before(p.WindowEnd)
}

// DisplayStatus derives open/closed/resolved at now
func (p *Proposition) DisplayStatus(now time.Time) PropositionStatus {
	if p.Status == StatusResolved {
		return StatusResolved
	}
	if !now.Before(p.WindowEnd) {
		return StatusClosed
	}
	return StatusOpen
}

// Resolve marks the proposition resolved with the given winning side.
// Only the creator may resolve, and only once the betting window has ended.
func (p *Proposition) Resolve(side Side, requesterID string, now time.Time) error {
	if side != SideOver && side != SideUnder {
		return errs.NewValidationError("winning_side", "must be over or under")
	}
	if requesterID != p.CreatorID {
		return errs.NewAuthorizationError(requesterID, "resolve proposition",
			"only the creator can resolve")
	}
	if p.Status == StatusResolved {
		return errs.NewInvalidStateError(p.ID, string(p.Status), "already resolved")
	}
	if now.Before(p.WindowEnd) {
		return errs.NewInvalidStateError(p.ID, string(p.DisplayStatus(now)),
			"cannot resolve before the betting window ends")
	}

	winning := side
	resolvedAt := now
	p.Status = StatusResolved
	p.WinningSide = &winning
	p.ResolvedAt = &resolvedAt
	return nil
}

// CheckBettable returns a betting-closed error when stakes are not accepted at now
func (p *Proposition) CheckBettable(now time.Time) error {
	if p.IsBettable(now) {
		return nil
	}
	status := p.DisplayStatus(now)
	if status == StatusResolved {
		return errs.NewBettingClosedError(p.ID, string(status), "proposition is resolved")
	}
	return errs.NewBettingClosedError(p.ID, string(status), "betting window has ended")
}

// Clone returns a deep copy of the proposition
func (p *Proposition) Clone() *Proposition {
	c := *p
	if p.WinningSide != nil {
		s := *p.WinningSide
		c.WinningSide = &s
	}
	if p.ResolvedAt != nil {
		t := *p.ResolvedAt
		c.ResolvedAt = &t
	}
	return &c
}
