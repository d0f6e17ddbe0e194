package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mensunw/people-bets/internal/app"
	"github.com/mensunw/people-bets/internal/domain/entity"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/messaging"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/handler"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/middleware"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/auth"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/cache"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/database"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	kafkamessaging "github.com/mensunw/people-bets/internal/infrastructure/adapter/messaging"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/metrics"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/repository/memory"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/mensunw/people-bets/internal/infrastructure/adapter/time"
	"github.com/mensunw/people-bets/internal/infrastructure/config"
)

// store is what the server needs from a backing store
type store interface {
	persistence.UnitOfWork
	handler.Pinger
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Metrics
	var recorder coreport.MetricsRecorder = metrics.NewNoopRecorder()
	var observer middleware.HTTPObserver
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheusRecorder(cfg.Metrics.Namespace)
		recorder, observer, metricsHandler = prom, prom, prom.Handler()
	}

	// Storage
	db, closeStore, err := openStore(ctx, cfg, appLogger, tp, recorder)
	if err != nil {
		appLogger.Error("Failed to open store", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer closeStore()

	// Stats cache
	var statsCache coreport.Cache = cache.NewNoopCache()
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, stats are computed on every request", map[string]any{"error": err.Error()})
		} else {
			statsCache = redisCache
			defer func() { _ = redisCache.Close() }()
		}
	}

	// Domain events
	var publisher messaging.EventPublisher = kafkamessaging.NewLogPublisher(appLogger)
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := kafkamessaging.NewKafkaPublisher(cfg.Kafka, appLogger)
		if err != nil {
			appLogger.Error("Failed to create event publisher", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		publisher = kafkaPublisher
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Warn("Failed to close event publisher", map[string]any{"error": err.Error()})
		}
	}()

	deps := app.Dependencies{
		UnitOfWork:   db,
		Cache:        statsCache,
		StatsTTL:     cfg.Redis.StatsTTL,
		Publisher:    publisher,
		Metrics:      recorder,
		TimeProvider: tp,
		Logger:       appLogger,
	}
	useCases := app.NewUseCases(deps)

	tokens, err := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token verifier", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Leaderboard rebuild job
	jobs, err := scheduler.NewLeaderboardScheduler(ctx, cfg.Leaderboard, useCases.Leaderboard, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to create leaderboard scheduler", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if cfg.Leaderboard.RebuildOnStart {
		if err := jobs.RunNow(ctx); err != nil {
			appLogger.Warn("Initial leaderboard rebuild failed", map[string]any{"error": err.Error()})
		}
	}
	jobs.Start()

	router := app.NewRouter(useCases, deps, app.RouterOptions{
		Verifier:       tokens,
		AdminKey:       cfg.Leaderboard.AdminKey,
		Database:       db,
		MetricsHandler: metricsHandler,
		Observer:       observer,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"driver":  cfg.Database.Driver,
			"redis":   cfg.Redis.Enabled,
			"kafka":   cfg.Kafka.Enabled,
			"metrics": cfg.Metrics.Enabled,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	stop()
	jobs.Stop(shutdownCtx)

	appLogger.Info("Server exited gracefully", nil)
}

// openStore connects the configured store and returns it with its closer
func openStore(ctx context.Context, cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider, recorder coreport.MetricsRecorder) (store, func(), error) {
	dbConfig, err := database.CreateConfigFromViperConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	if dbConfig.Driver == database.DriverMemory {
		appLogger.Warn("Using the in-memory store, data is lost on restart", nil)
		mem := memory.NewStore(appLogger)
		if err := mem.SeedGlobalGroup(ctx, entity.GlobalGroup(tp.Now())); err != nil {
			return nil, nil, err
		}
		return mem, func() {}, nil
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp, recorder)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}

	if err := dbManager.Migrate(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &sqlStore{UnitOfWork: dbManager.CreateUnitOfWork(), manager: dbManager}, closeDB, nil
}

// sqlStore pairs the postgres unit of work with its pool for health checks
type sqlStore struct {
	*database.UnitOfWork
	manager *database.Manager
}

func (s *sqlStore) Ping(ctx context.Context) error {
	return s.manager.Ping(ctx)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Auth.Secret == "" {
		missingConfigs = append(missingConfigs, "auth.secret (or PB_AUTH_SECRET environment variable)")
	}
	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	switch cfg.Database.Driver {
	case database.DriverMemory:
	case database.DriverPostgres, "":
		// A URL carries every connection field
		if cfg.Database.URL == "" {
			if cfg.Database.Host == "" {
				missingConfigs = append(missingConfigs, "database.host (or PB_DB_HOST environment variable)")
			}
			if cfg.Database.Username == "" {
				missingConfigs = append(missingConfigs, "database.username (or PB_DB_USERNAME environment variable)")
			}
			if cfg.Database.Database == "" {
				missingConfigs = append(missingConfigs, "database.database (or PB_DB_NAME environment variable)")
			}
		}
		if cfg.Database.QueryTimeout == 0 {
			missingConfigs = append(missingConfigs, "database.queryTimeout")
		}
	default:
		return fmt.Errorf("invalid database driver: %s, must be %s or %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverMemory)
	}

	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		missingConfigs = append(missingConfigs, "kafka.brokers")
	}
	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "redis.addr")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverMemory {
			warnings = append(warnings, "database.driver is memory in production")
		}
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver != database.DriverMemory && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if len(cfg.Auth.Secret) < 32 {
			warnings = append(warnings, "auth.secret is shorter than 32 bytes")
		}
		if cfg.Leaderboard.AdminKey == "" {
			warnings = append(warnings, "leaderboard.adminKey is empty, any caller may trigger a rebuild")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
