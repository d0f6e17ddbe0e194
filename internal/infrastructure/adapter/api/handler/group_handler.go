package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/dto"
)

// GroupHandler handles group management requests
type GroupHandler struct {
	base
	groups usecase.GroupUseCase
}

// NewGroupHandler creates a new group handler instance
func NewGroupHandler(groups usecase.GroupUseCase, logger coreport.Logger, metrics coreport.MetricsRecorder) *GroupHandler {
	return &GroupHandler{base: newBase(logger, metrics), groups: groups}
}

// Create handles POST /api/v1/groups
func (h *GroupHandler) Create(c *gin.Context) {
	const op = "create_group"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	var req dto.CreateGroupRequest
	if !h.bindJSON(c, op, &req) {
		return
	}

	group, err := h.groups.CreateGroup(c.Request.Context(), identity.UserID, usecase.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewGroupResponse(group))
}

// ListMine handles GET /api/v1/groups
func (h *GroupHandler) ListMine(c *gin.Context) {
	const op = "list_my_groups"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	groups, err := h.groups.ListMyGroups(c.Request.Context(), identity.UserID)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGroupListResponse(groups))
}

// ListPublic handles GET /api/v1/groups/public
func (h *GroupHandler) ListPublic(c *gin.Context) {
	groups, err := h.groups.ListPublicGroups(c.Request.Context())
	if err != nil {
		h.fail(c, "list_public_groups", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGroupListResponse(groups))
}

// Get handles GET /api/v1/groups/:groupId
func (h *GroupHandler) Get(c *gin.Context) {
	const op = "get_group"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	groupID, ok := h.pathID(c, op, "groupId", domainerr.ErrGroupNotFound)
	if !ok {
		return
	}

	detail, err := h.groups.GetGroup(c.Request.Context(), groupID, identity.UserID)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGroupDetailResponse(detail))
}

// Join handles POST /api/v1/groups/:groupId/join
func (h *GroupHandler) Join(c *gin.Context) {
	const op = "join_group"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	groupID, ok := h.pathID(c, op, "groupId", domainerr.ErrGroupNotFound)
	if !ok {
		return
	}

	if err := h.groups.JoinGroup(c.Request.Context(), groupID, identity.UserID); err != nil {
		h.fail(c, op, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Invite handles POST /api/v1/groups/:groupId/invite
func (h *GroupHandler) Invite(c *gin.Context) {
	const op = "invite_members"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	groupID, ok := h.pathID(c, op, "groupId", domainerr.ErrGroupNotFound)
	if !ok {
		return
	}
	var req dto.InviteMembersRequest
	if !h.bindJSON(c, op, &req) {
		return
	}

	added, err := h.groups.InviteMembers(c.Request.Context(), groupID, identity.UserID, req.UserIDs)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, dto.InviteMembersResponse{Added: added})
}

// Leave handles POST /api/v1/groups/:groupId/leave
func (h *GroupHandler) Leave(c *gin.Context) {
	const op = "leave_group"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	groupID, ok := h.pathID(c, op, "groupId", domainerr.ErrGroupNotFound)
	if !ok {
		return
	}

	if err := h.groups.LeaveGroup(c.Request.Context(), groupID, identity.UserID); err != nil {
		h.fail(c, op, err)
		return
	}
	c.Status(http.StatusNoContent)
}
