package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/usecase/leaderboard"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/database"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/messaging"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/metrics"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/report"
	timeProvider "github.com/mensunw/people-bets/internal/infrastructure/adapter/time"
	"github.com/mensunw/people-bets/internal/infrastructure/config"
)

func main() {
	rebuild := flag.Bool("rebuild", false, "recompute the leaderboard before printing it")
	sortBy := flag.String("sort", string(entity.SortNetProfit), "sort key: net_profit|win_rate|total_wins|current_streak")
	limit := flag.Int("limit", entity.MaxLeaderboardSize, "rows to print")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level := coreport.ParseLogLevel(cfg.Logger.Level)
	if *verbose {
		level = coreport.LogLevelDebug
	}
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, level)
	defer func() { _ = appLogger.Flush() }()

	dbConfig, err := database.CreateConfigFromViperConfig(cfg)
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}
	if dbConfig.Driver != database.DriverPostgres {
		log.Fatalf("The leaderboard tool needs the postgres driver, got %q", dbConfig.Driver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	tp := timeProvider.NewRealTimeProvider()
	dbManager := database.NewManager(dbConfig, appLogger, tp, metrics.NewNoopRecorder())
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	board := leaderboard.NewLeaderboardUseCase(
		dbManager.CreateUnitOfWork(),
		messaging.NewLogPublisher(appLogger),
		metrics.NewNoopRecorder(),
		tp,
		appLogger,
	)

	if *rebuild {
		rows, err := board.Rebuild(ctx)
		if err != nil {
			appLogger.Error("Leaderboard rebuild failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		appLogger.Info("Leaderboard rebuilt", map[string]any{"rows": rows})
	}

	entries, err := board.Top(ctx, *sortBy, *limit)
	if err != nil {
		appLogger.Error("Failed to read leaderboard", map[string]any{"error": err.Error(), "sort": *sortBy})
		os.Exit(1)
	}

	if err := report.NewLeaderboardTable(os.Stdout).Write(*sortBy, entries); err != nil {
		appLogger.Error("Failed to print leaderboard", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
