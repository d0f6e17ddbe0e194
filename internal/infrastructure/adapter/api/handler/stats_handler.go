package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	domainerr "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
)

const statsCacheControl = "public, max-age=600"

// StatsHandler serves per-user statistics with conditional GET support
type StatsHandler struct {
	base
	stats usecase.StatsUseCase
}

// NewStatsHandler creates a new stats handler instance
func NewStatsHandler(stats usecase.StatsUseCase, logger coreport.Logger, metrics coreport.MetricsRecorder) *StatsHandler {
	return &StatsHandler{base: newBase(logger, metrics), stats: stats}
}

// Get handles GET /api/v1/users/:userId/stats?range=
func (h *StatsHandler) Get(c *gin.Context) {
	const op = "user_stats"
	userID, ok := h.pathID(c, op, "userId", domainerr.ErrUserNotFound)
	if !ok {
		return
	}

	rangeDays := 0
	if raw := c.Query("range"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(c, op, domainerr.NewValidationError("range", "must be an integer number of days"))
			return
		}
		rangeDays = n
	}

	result, err := h.stats.GetUserStats(c.Request.Context(), userID, rangeDays)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	etag := `"` + result.ETag + `"`
	c.Header("ETag", etag)
	c.Header("Cache-Control", statsCacheControl)

	if etagMatches(c.GetHeader("If-None-Match"), result.ETag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.JSON(http.StatusOK, result.Stats)
}

// etagMatches reports whether an If-None-Match header names tag. It accepts
// quoted, unquoted and weak forms as well as comma-separated lists.
func etagMatches(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		candidate = strings.TrimPrefix(candidate, "W/")
		if strings.Trim(candidate, `"`) == tag {
			return true
		}
	}
	return false
}
