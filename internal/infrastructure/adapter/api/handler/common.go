package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mensunw/people-bets/internal/domain/entity"
	domainerr "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/middleware"
)

// base carries what every handler needs to report failures
type base struct {
	logger  coreport.Logger
	metrics coreport.MetricsRecorder
}

func newBase(logger coreport.Logger, metrics coreport.MetricsRecorder) base {
	return base{logger: logger, metrics: metrics}
}

// fail counts the failure, logs it and writes the error response
func (b base) fail(c *gin.Context, operation string, err error) {
	b.metrics.OperationFailed(operation, domainerr.ErrorCode(err))
	middleware.AbortWithError(c, b.logger, operation, err)
}

// caller returns the authenticated identity or writes a 401
func (b base) caller(c *gin.Context, operation string) (entity.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		b.fail(c, operation, domainerr.ErrUnauthenticated)
		return entity.Identity{}, false
	}
	return id, true
}

// bindJSON decodes the request body into req or writes a 400
func (b base) bindJSON(c *gin.Context, operation string, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		b.fail(c, operation, domainerr.NewValidationError("body", err.Error()))
		return false
	}
	return true
}

// pathID reads a UUID path parameter. Anything else cannot name an existing
// row, so it is reported with notFound.
func (b base) pathID(c *gin.Context, operation, param string, notFound error) (string, bool) {
	raw := c.Param(param)
	if _, err := uuid.Parse(raw); err != nil {
		b.fail(c, operation, notFound)
		return "", false
	}
	return raw, true
}
