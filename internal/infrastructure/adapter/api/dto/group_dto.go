package dto

import (
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
)

// CreateGroupRequest is the body of POST /api/v1/groups
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"isPrivate"`
}

// InviteMembersRequest is the body of POST /api/v1/groups/:groupId/invite
type InviteMembersRequest struct {
	UserIDs []string `json:"userIds" binding:"required,min=1,max=100,dive,uuid"`
}

// InviteMembersResponse reports how many users were added
type InviteMembersResponse struct {
	Added int `json:"added"`
}

// GroupResponse represents a group
type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPrivate   bool      `json:"isPrivate"`
	IsGlobal    bool      `json:"isGlobal"`
	LeaderID    string    `json:"leaderId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MemberResponse represents one group membership
type MemberResponse struct {
	UserID   string    `json:"userId"`
	JoinedAt time.Time `json:"joinedAt"`
}

// GroupDetailResponse is a group with its members
type GroupDetailResponse struct {
	GroupResponse
	IsMember bool             `json:"isMember"`
	Members  []MemberResponse `json:"members"`
}

// GroupListResponse wraps a list of groups
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// NewGroupResponse converts a group
func NewGroupResponse(g *entity.Group) GroupResponse {
	return GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		IsPrivate:   g.IsPrivate,
		IsGlobal:    g.ID == entity.GlobalGroupID,
		LeaderID:    g.LeaderID,
		CreatedAt:   g.CreatedAt,
	}
}

// NewGroupListResponse converts a list of groups
func NewGroupListResponse(groups []*entity.Group) GroupListResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, NewGroupResponse(g))
	}
	return GroupListResponse{Groups: out}
}

// NewGroupDetailResponse converts a group detail
func NewGroupDetailResponse(d *usecase.GroupDetail) GroupDetailResponse {
	members := make([]MemberResponse, 0, len(d.Members))
	for _, m := range d.Members {
		members = append(members, MemberResponse{UserID: m.UserID, JoinedAt: m.JoinedAt})
	}
	return GroupDetailResponse{
		GroupResponse: NewGroupResponse(d.Group),
		IsMember:      d.IsMember,
		Members:       members,
	}
}
