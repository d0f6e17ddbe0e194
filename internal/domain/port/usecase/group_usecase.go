package usecase

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// CreateGroupInput is the unvalidated input for a new group
type CreateGroupInput struct {
	Name        string
	Description string
	IsPrivate   bool
}

// GroupDetail is a group with its member list
type GroupDetail struct {
	Group    *entity.Group
	Members  []*entity.Membership
	IsMember bool
}

// GroupUseCase defines group management operations
type GroupUseCase interface {
	// CreateGroup creates a group and enrolls the leader as its first member
	CreateGroup(ctx context.Context, leaderID string, input CreateGroupInput) (*entity.Group, error)

	// GetGroup returns a group and its members. Private groups are visible to members only.
	GetGroup(ctx context.Context, groupID, viewerID string) (*GroupDetail, error)

	ListMyGroups(ctx context.Context, userID string) ([]*entity.Group, error)
	ListPublicGroups(ctx context.Context) ([]*entity.Group, error)

	// JoinGroup enrolls userID in a public group
	JoinGroup(ctx context.Context, groupID, userID string) error

	// InviteMembers lets the leader add users directly and returns how many were added
	InviteMembers(ctx context.Context, groupID, leaderID string, userIDs []string) (int, error)

	// LeaveGroup removes userID from the group; leaders cannot leave
	LeaveGroup(ctx context.Context, groupID, userID string) error
}
