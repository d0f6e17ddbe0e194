// Package app wires use cases and the HTTP router from their adapters.
package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/messaging"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
	"github.com/mensunw/people-bets/internal/domain/usecase/grant"
	"github.com/mensunw/people-bets/internal/domain/usecase/group"
	"github.com/mensunw/people-bets/internal/domain/usecase/leaderboard"
	"github.com/mensunw/people-bets/internal/domain/usecase/ledger"
	"github.com/mensunw/people-bets/internal/domain/usecase/proposition"
	"github.com/mensunw/people-bets/internal/domain/usecase/settlement"
	"github.com/mensunw/people-bets/internal/domain/usecase/stake"
	"github.com/mensunw/people-bets/internal/domain/usecase/stats"
	"github.com/mensunw/people-bets/internal/domain/usecase/user"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/handler"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/middleware"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/routes"
)

// Dependencies are the adapters every use case is built from
type Dependencies struct {
	UnitOfWork   persistence.UnitOfWork
	Cache        coreport.Cache
	StatsTTL     time.Duration
	Publisher    messaging.EventPublisher
	Metrics      coreport.MetricsRecorder
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
}

// UseCases holds one instance of each use case
type UseCases struct {
	Profiles     *user.UserUseCase
	Groups       *group.GroupUseCase
	Propositions *proposition.PropositionUseCase
	Stakes       *stake.StakeUseCase
	Grants       *grant.GrantUseCase
	Leaderboard  *leaderboard.LeaderboardUseCase
	Stats        *stats.StatsUseCase
}

// NewUseCases builds every use case over one unit of work
func NewUseCases(d Dependencies) *UseCases {
	ledgerService := ledger.NewService(d.UnitOfWork, d.Logger.With(map[string]any{"component": "ledger"}))
	engine := settlement.NewEngine(d.UnitOfWork, ledgerService, d.Logger.With(map[string]any{"component": "settlement"}))

	statsUseCase := stats.NewStatsUseCase(d.UnitOfWork, d.Cache, d.StatsTTL, d.TimeProvider, d.Logger)
	publisher := stats.NewCacheInvalidator(d.Publisher, statsUseCase)

	return &UseCases{
		Profiles:     user.NewUserUseCase(d.UnitOfWork, ledgerService, d.TimeProvider, d.Logger),
		Groups:       group.NewGroupUseCase(d.UnitOfWork, d.TimeProvider, d.Logger),
		Propositions: proposition.NewPropositionUseCase(d.UnitOfWork, engine, publisher, d.Metrics, d.TimeProvider, d.Logger),
		Stakes:       stake.NewStakeUseCase(d.UnitOfWork, ledgerService, publisher, d.Metrics, d.TimeProvider, d.Logger),
		Grants:       grant.NewGrantUseCase(d.UnitOfWork, ledgerService, publisher, d.Metrics, d.TimeProvider, d.Logger),
		Leaderboard:  leaderboard.NewLeaderboardUseCase(d.UnitOfWork, publisher, d.Metrics, d.TimeProvider, d.Logger),
		Stats:        statsUseCase,
	}
}

// RouterOptions configures the HTTP surface
type RouterOptions struct {
	Verifier       middleware.TokenVerifier
	AdminKey       string
	Database       handler.Pinger
	MetricsHandler http.Handler
	Observer       middleware.HTTPObserver
}

// NewRouter builds the gin engine with middlewares and every route
func NewRouter(uc *UseCases, d Dependencies, opts RouterOptions) *gin.Engine {
	router := gin.New()
	routes.SetupMiddlewares(router, d.Logger, opts.Observer)

	h := routes.Handlers{
		Profile:     handler.NewProfileHandler(uc.Profiles, d.Logger, d.Metrics),
		Group:       handler.NewGroupHandler(uc.Groups, d.Logger, d.Metrics),
		Proposition: handler.NewPropositionHandler(uc.Propositions, uc.Stakes, d.Logger, d.Metrics),
		Grant:       handler.NewGrantHandler(uc.Grants, d.Logger, d.Metrics),
		Leaderboard: handler.NewLeaderboardHandler(uc.Leaderboard, d.Logger, d.Metrics),
		Stats:       handler.NewStatsHandler(uc.Stats, d.Logger, d.Metrics),
		Health:      handler.NewHealthHandler(opts.Database, d.TimeProvider, d.Logger),
	}
	routes.SetupRoutes(router, h, routes.Security{
		Verifier: opts.Verifier,
		Profiles: uc.Profiles,
		AdminKey: opts.AdminKey,
	}, opts.MetricsHandler, d.Logger)

	return router
}
