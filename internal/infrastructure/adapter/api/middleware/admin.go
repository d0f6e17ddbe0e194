package middleware

import (
	"crypto/subtle"
	"fmt"

	"github.com/gin-gonic/gin"
	domainerr "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
)

// AdminKeyHeader carries the shared key for maintenance endpoints
const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey rejects requests whose X-Admin-Key does not match key.
// An empty key disables the check.
func RequireAdminKey(key string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		got := c.GetHeader(AdminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			AbortWithError(c, logger, "admin_key", fmt.Errorf("%w: invalid admin key", domainerr.ErrAuthorization))
			return
		}
		c.Next()
	}
}
