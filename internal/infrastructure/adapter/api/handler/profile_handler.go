package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/dto"
)

// ProfileHandler handles profile bootstrap and lookup
type ProfileHandler struct {
	base
	profiles usecase.ProfileUseCase
}

// NewProfileHandler creates a new profile handler instance
func NewProfileHandler(profiles usecase.ProfileUseCase, logger coreport.Logger, metrics coreport.MetricsRecorder) *ProfileHandler {
	return &ProfileHandler{base: newBase(logger, metrics), profiles: profiles}
}

// Bootstrap handles POST /api/v1/profile. The body is optional.
func (h *ProfileHandler) Bootstrap(c *gin.Context) {
	const op = "bootstrap_profile"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}

	var req dto.BootstrapProfileRequest
	if c.Request.ContentLength != 0 {
		if !h.bindJSON(c, op, &req) {
			return
		}
	}

	profile, err := h.profiles.Bootstrap(c.Request.Context(), identity, req.Username)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(profile, identity.Email))
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	const op = "get_profile"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(profile, identity.Email))
}
