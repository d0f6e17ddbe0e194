package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mensunw/people-bets/internal/domain/entity"
	domainerr "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/dto"
)

// LeaderboardHandler serves and rebuilds the leaderboard
type LeaderboardHandler struct {
	base
	leaderboard usecase.LeaderboardUseCase
}

// NewLeaderboardHandler creates a new leaderboard handler instance
func NewLeaderboardHandler(leaderboard usecase.LeaderboardUseCase, logger coreport.Logger, metrics coreport.MetricsRecorder) *LeaderboardHandler {
	return &LeaderboardHandler{base: newBase(logger, metrics), leaderboard: leaderboard}
}

// Top handles GET /api/v1/leaderboard?sortBy=&limit=
func (h *LeaderboardHandler) Top(c *gin.Context) {
	const op = "leaderboard_top"

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.fail(c, op, domainerr.NewValidationError("limit", "must be a positive integer"))
			return
		}
		limit = n
	}

	sortBy := c.Query("sortBy")
	entries, err := h.leaderboard.Top(c.Request.Context(), sortBy, limit)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	if sortBy == "" {
		sortBy = string(entity.SortNetProfit)
	}
	c.JSON(http.StatusOK, dto.NewLeaderboardResponse(sortBy, entries))
}

// Rebuild handles POST /api/v1/leaderboard/rebuild
func (h *LeaderboardHandler) Rebuild(c *gin.Context) {
	updated, err := h.leaderboard.Rebuild(c.Request.Context())
	if err != nil {
		h.fail(c, "leaderboard_rebuild", err)
		return
	}
	c.JSON(http.StatusOK, dto.RebuildResponse{Updated: updated})
}
