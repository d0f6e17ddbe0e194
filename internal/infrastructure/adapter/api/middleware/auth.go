package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mensunw/people-bets/internal/domain/entity"
	domainerr "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
)

const identityKey = "identity"

// TokenVerifier turns a bearer token into the identity it asserts
type TokenVerifier interface {
	Verify(token string) (entity.Identity, error)
}

// IdentityFrom returns the identity set by Authenticate
func IdentityFrom(c *gin.Context) (entity.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entity.Identity{}, false
	}
	id, ok := v.(entity.Identity)
	return id, ok
}

// Authenticate requires an "Authorization: Bearer <token>" header
func Authenticate(verifier TokenVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			AbortWithError(c, logger, "authenticate", domainerr.ErrUnauthenticated)
			return
		}

		identity, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			AbortWithError(c, logger, "authenticate", err)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// EnsureProfile creates the caller's profile on the first authenticated call
func EnsureProfile(profiles usecase.ProfileUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			AbortWithError(c, logger, "ensure_profile", domainerr.ErrUnauthenticated)
			return
		}
		if _, err := profiles.Bootstrap(c.Request.Context(), identity, ""); err != nil {
			AbortWithError(c, logger, "ensure_profile", err)
			return
		}
		c.Next()
	}
}
