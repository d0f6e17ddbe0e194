package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestID(c),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

// StatusCode maps a domain error onto an HTTP status
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrAuthorization):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateStake),
		errors.Is(err, domainerr.ErrAlreadyMember),
		errors.Is(err, domainerr.ErrConflict),
		errors.Is(err, domainerr.ErrDuplicateKey),
		errors.Is(err, domainerr.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrAlreadyClaimed):
		return http.StatusTooManyRequests
	case errors.Is(err, domainerr.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the text shown to clients. Server errors never leak
// their cause.
func publicMessage(err error, status int) string {
	switch status {
	case http.StatusInternalServerError:
		return "Internal server error"
	case http.StatusServiceUnavailable:
		return "Service temporarily unavailable, try again"
	case http.StatusConflict:
		if errors.Is(err, domainerr.ErrConflict) {
			return domainerr.ErrConflict.Error()
		}
	}
	return err.Error()
}

// AbortWithError writes the standard error body for err and stops the chain.
// Client errors are logged at warn, server errors at error.
func AbortWithError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := StatusCode(err)

	fields := map[string]any{
		"operation":  operation,
		"status":     status,
		"error":      err.Error(),
		"request_id": RequestID(c),
	}
	var detailed interface{ LogFields() map[string]any }
	if errors.As(err, &detailed) {
		for k, v := range detailed.LogFields() {
			fields[k] = v
		}
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Warn("Request rejected", fields)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: publicMessage(err, status),
	})
}
