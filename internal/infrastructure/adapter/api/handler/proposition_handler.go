package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerr "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/dto"
)

// PropositionHandler handles the proposition lifecycle and stake placement
type PropositionHandler struct {
	base
	propositions usecase.PropositionUseCase
	stakes       usecase.StakeUseCase
}

// NewPropositionHandler creates a new proposition handler instance
func NewPropositionHandler(
	propositions usecase.PropositionUseCase,
	stakes usecase.StakeUseCase,
	logger coreport.Logger,
	metrics coreport.MetricsRecorder,
) *PropositionHandler {
	return &PropositionHandler{
		base:         newBase(logger, metrics),
		propositions: propositions,
		stakes:       stakes,
	}
}

// Create handles POST /api/v1/propositions
func (h *PropositionHandler) Create(c *gin.Context) {
	const op = "create_proposition"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	var req dto.CreatePropositionRequest
	if !h.bindJSON(c, op, &req) {
		return
	}
	if _, err := uuid.Parse(req.GroupID); err != nil {
		h.fail(c, op, domainerr.ErrGroupNotFound)
		return
	}

	prop, err := h.propositions.CreateProposition(c.Request.Context(), identity.UserID, usecase.CreatePropositionInput{
		Title:       req.Title,
		Description: req.Description,
		Target:      req.Target.String(),
		GroupID:     req.GroupID,
		WindowEnd:   req.WindowEnd,
	})
	if err != nil {
		h.fail(c, op, err)
		return
	}

	// a new proposition has an empty pool, so the view is built locally
	c.JSON(http.StatusCreated, dto.NewPropositionResponse(&usecase.PropositionView{
		Proposition: prop,
		Status:      prop.Status,
	}))
}

// Get handles GET /api/v1/propositions/:propositionId
func (h *PropositionHandler) Get(c *gin.Context) {
	const op = "get_proposition"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	propID, ok := h.pathID(c, op, "propositionId", domainerr.ErrPropositionNotFound)
	if !ok {
		return
	}

	view, err := h.propositions.GetProposition(c.Request.Context(), propID, identity.UserID)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPropositionResponse(view))
}

// ListByGroup handles GET /api/v1/groups/:groupId/propositions
func (h *PropositionHandler) ListByGroup(c *gin.Context) {
	const op = "list_propositions"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	groupID, ok := h.pathID(c, op, "groupId", domainerr.ErrGroupNotFound)
	if !ok {
		return
	}

	views, err := h.propositions.ListByGroup(c.Request.Context(), groupID, identity.UserID)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPropositionListResponse(views))
}

// PlaceStake handles POST /api/v1/propositions/:propositionId/stakes
func (h *PropositionHandler) PlaceStake(c *gin.Context) {
	const op = "place_stake"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	propID, ok := h.pathID(c, op, "propositionId", domainerr.ErrPropositionNotFound)
	if !ok {
		return
	}
	var req dto.PlaceStakeRequest
	if !h.bindJSON(c, op, &req) {
		return
	}

	result, err := h.stakes.PlaceStake(c.Request.Context(), propID, identity.UserID, req.Side, req.Amount.String())
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewPlaceStakeResponse(result))
}

// Resolve handles POST /api/v1/propositions/:propositionId/resolve
func (h *PropositionHandler) Resolve(c *gin.Context) {
	const op = "resolve_proposition"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	propID, ok := h.pathID(c, op, "propositionId", domainerr.ErrPropositionNotFound)
	if !ok {
		return
	}
	var req dto.ResolveRequest
	if !h.bindJSON(c, op, &req) {
		return
	}

	result, err := h.propositions.Resolve(c.Request.Context(), propID, identity.UserID, req.WinningSide)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResolveResponse(result))
}
