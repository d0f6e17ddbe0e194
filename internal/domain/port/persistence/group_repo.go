package persistence

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// GroupRepository stores groups and their memberships
type GroupRepository interface {
	// Create stores a new group
	Create(ctx context.Context, group *entity.Group) error

	// GetByID returns ErrGroupNotFound when the group does not exist
	GetByID(ctx context.Context, id string) (*entity.Group, error)

	// ListForUser returns the groups userID belongs to, ordered by name
	ListForUser(ctx context.Context, userID string) ([]*entity.Group, error)

	// ListPublic returns all non-private groups, ordered by name
	ListPublic(ctx context.Context) ([]*entity.Group, error)

	// AddMember returns ErrAlreadyMember when the membership exists
	AddMember(ctx context.Context, membership *entity.Membership) error

	// RemoveMember returns ErrMembershipNotFound when there is nothing to remove
	RemoveMember(ctx context.Context, groupID, userID string) error

	IsMember(ctx context.Context, groupID, userID string) (bool, error)

	// ListMembers returns memberships ordered by join time
	ListMembers(ctx context.Context, groupID string) ([]*entity.Membership, error)
}
