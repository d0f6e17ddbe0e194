package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/handler"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Profile     *handler.ProfileHandler
	Group       *handler.GroupHandler
	Proposition *handler.PropositionHandler
	Grant       *handler.GrantHandler
	Leaderboard *handler.LeaderboardHandler
	Stats       *handler.StatsHandler
	Health      *handler.HealthHandler
}

// Security holds what the authenticated routes need
type Security struct {
	Verifier middleware.TokenVerifier
	Profiles usecase.ProfileUseCase
	AdminKey string
}

// SetupRoutes configures all the routes for the API. metrics may be nil.
func SetupRoutes(router *gin.Engine, h Handlers, sec Security, metrics http.Handler, logger coreport.Logger) {
	router.GET("/healthz", h.Health.Check)
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	api := router.Group("/api/v1")
	api.Use(middleware.Authenticate(sec.Verifier, logger))

	// POST /api/v1/profile creates the profile itself, with the caller's username
	api.POST("/profile", h.Profile.Bootstrap)

	authed := api.Group("")
	authed.Use(middleware.EnsureProfile(sec.Profiles, logger))
	{
		authed.GET("/profile", h.Profile.Get)

		groups := authed.Group("/groups")
		{
			groups.POST("", h.Group.Create)
			groups.GET("", h.Group.ListMine)
			groups.GET("/public", h.Group.ListPublic)
			groups.GET("/:groupId", h.Group.Get)
			groups.POST("/:groupId/join", h.Group.Join)
			groups.POST("/:groupId/invite", h.Group.Invite)
			groups.POST("/:groupId/leave", h.Group.Leave)
			groups.GET("/:groupId/propositions", h.Proposition.ListByGroup)
		}

		props := authed.Group("/propositions")
		{
			props.POST("", h.Proposition.Create)
			props.GET("/:propositionId", h.Proposition.Get)
			props.POST("/:propositionId/stakes", h.Proposition.PlaceStake)
			props.POST("/:propositionId/resolve", h.Proposition.Resolve)
		}

		authed.GET("/daily-grant", h.Grant.Status)
		authed.POST("/daily-grant/claim", h.Grant.Claim)

		authed.GET("/leaderboard", h.Leaderboard.Top)
		authed.POST("/leaderboard/rebuild", middleware.RequireAdminKey(sec.AdminKey, logger), h.Leaderboard.Rebuild)

		authed.GET("/users/:userId/stats", h.Stats.Get)
	}
}

// SetupMiddlewares configures global middlewares for the API. observer may be nil.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, observer middleware.HTTPObserver) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, observer))
	router.Use(middleware.CORS())
}
