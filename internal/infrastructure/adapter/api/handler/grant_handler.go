package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/dto"
)

// GrantHandler handles the daily grant
type GrantHandler struct {
	base
	grants usecase.GrantUseCase
}

// NewGrantHandler creates a new grant handler instance
func NewGrantHandler(grants usecase.GrantUseCase, logger coreport.Logger, metrics coreport.MetricsRecorder) *GrantHandler {
	return &GrantHandler{base: newBase(logger, metrics), grants: grants}
}

// Status handles GET /api/v1/daily-grant
func (h *GrantHandler) Status(c *gin.Context) {
	const op = "grant_status"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}
	status, err := h.grants.Status(c.Request.Context(), identity.UserID)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGrantStatusResponse(status))
}

// Claim handles POST /api/v1/daily-grant/claim. A refused claim answers 429
// with the instant the next claim opens.
func (h *GrantHandler) Claim(c *gin.Context) {
	const op = "claim_grant"
	identity, ok := h.caller(c, op)
	if !ok {
		return
	}

	result, err := h.grants.Claim(c.Request.Context(), identity.UserID)
	var claimed *domainerr.AlreadyClaimedError
	if errors.As(err, &claimed) {
		h.metrics.OperationFailed(op, domainerr.CodeAlreadyClaimed)
		h.logger.Info("Daily grant already claimed", claimed.LogFields())
		next := claimed.NextClaimAt
		c.JSON(http.StatusTooManyRequests, dto.ClaimResponse{
			Success:     false,
			Message:     "Daily grant already claimed. Come back tomorrow.",
			NextClaimAt: &next,
		})
		return
	}
	if err != nil {
		h.fail(c, op, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClaimResponse{
		Success: true,
		Amount:  result.Amount,
		Balance: result.Balance,
	})
}
