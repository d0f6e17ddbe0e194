package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	errs "github.com/mensunw/people-bets/internal/domain/error"
)

// GlobalGroupID identifies the default group every user belongs to
const GlobalGroupID = "00000000-0000-0000-0000-000000000000"

// Group name constraints
const (
	MinGroupNameLength = 3
	MaxGroupNameLength = 80
)

// Group is a container for propositions with a single leader
type Group struct {
	ID          string
	Name        string
	Description string
	IsPrivate   bool
	LeaderID    string // empty for the Global group
	CreatedAt   time.Time
}

// NewGroup validates input and creates a group led by leaderID
func NewGroup(name, description string, isPrivate bool, leaderID string, now time.Time) (*Group, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < MinGroupNameLength {
		return nil, errs.NewValidationError("name", "must be at least 3 characters")
	}
	if utf8.RuneCountInString(name) > MaxGroupNameLength {
		return nil, errs.NewValidationError("name", "too long")
	}
	if err := ValidateUserID(leaderID); err != nil {
		return nil, err
	}

	return &Group{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		IsPrivate:   isPrivate,
		LeaderID:    leaderID,
		CreatedAt:   now,
	}, nil
}

// GlobalGroup returns the distinguished group seeded at startup
func GlobalGroup(now time.Time) *Group {
	return &Group{
		ID:          GlobalGroupID,
		Name:        "Global",
		Description: "Everyone is a member of the Global group.",
		CreatedAt:   now,
	}
}

// IsGlobal reports whether g is the distinguished Global group
func (g *Group) IsGlobal() bool {
	return g.ID == GlobalGroupID
}

// IsLeader reports whether userID leads g
func (g *Group) IsLeader(userID string) bool {
	return g.LeaderID != "" && g.LeaderID == userID
}

// CanCreatePropositions reports whether userID may open propositions in g
func (g *Group) CanCreatePropositions(userID string) bool {
	return g.IsGlobal() || g.IsLeader(userID)
}

// CanLeave checks whether userID may leave g
func (g *Group) CanLeave(userID string) error {
	if g.IsGlobal() {
		return errs.NewValidationError("group", "the Global group cannot be left")
	}
	if g.IsLeader(userID) {
		return errs.NewAuthorizationError(userID, "leave group",
			"Group leaders cannot leave their group. Delete the group instead.")
	}
	return nil
}

// Membership links a user to a group
type Membership struct {
	GroupID  string
	UserID   string
	JoinedAt time.Time
}

// NewMembership creates a membership row
func NewMembership(groupID, userID string, now time.Time) *Membership {
	return &Membership{GroupID: groupID, UserID: userID, JoinedAt: now}
}
