package scheduler

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/infrastructure/config"
	"github.com/robfig/cron/v3"
)

// defaultJobTimeout bounds one rebuild run
const defaultJobTimeout = 5 * coreport.Minute

// LeaderboardScheduler rebuilds the leaderboard on a cron schedule.
// Schedules use the six-field form with seconds.
type LeaderboardScheduler struct {
	cron         *cron.Cron
	entryID      cron.EntryID
	leaderboard  usecase.LeaderboardUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	baseCtx      context.Context
	jobTimeout   coreport.Duration
}

// NewLeaderboardScheduler registers the rebuild job. It does not start the cron.
func NewLeaderboardScheduler(baseCtx context.Context, conf config.LeaderboardConfig, leaderboard usecase.LeaderboardUseCase, timeProvider coreport.TimeProvider, logger coreport.Logger) (*LeaderboardScheduler, error) {
	if baseCtx == nil {
		baseCtx = context.Background()
	}

	tz := conf.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid leaderboard timezone %q: %w", tz, err)
	}

	log := logger.With(map[string]any{"component": "leaderboard_scheduler"})
	cl := cronLogger{logger: log}
	s := &LeaderboardScheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		leaderboard:  leaderboard,
		timeProvider: timeProvider,
		logger:       log,
		baseCtx:      baseCtx,
		jobTimeout:   defaultJobTimeout,
	}

	id, err := s.cron.AddFunc(conf.Schedule, func() { _ = s.RunNow(s.baseCtx) })
	if err != nil {
		return nil, fmt.Errorf("invalid leaderboard schedule %q: %w", conf.Schedule, err)
	}
	s.entryID = id

	return s, nil
}

// RunNow rebuilds the leaderboard once
func (s *LeaderboardScheduler) RunNow(ctx context.Context) error {
	ctx, cancel := s.timeProvider.WithTimeout(ctx, s.jobTimeout)
	defer cancel()

	started := s.timeProvider.Now()
	rows, err := s.leaderboard.Rebuild(ctx)
	if err != nil {
		s.logger.Error("Scheduled leaderboard rebuild failed", map[string]any{"error": err.Error()})
		return err
	}

	s.logger.Info("Scheduled leaderboard rebuild finished", map[string]any{
		"rows":        rows,
		"duration_ms": s.timeProvider.Since(started).Std().Milliseconds(),
	})
	return nil
}

// NextRun returns the first scheduled run strictly after t
func (s *LeaderboardScheduler) NextRun(t time.Time) time.Time {
	return s.cron.Entry(s.entryID).Schedule.Next(t)
}

// Start begins running the schedule in the background
func (s *LeaderboardScheduler) Start() {
	s.cron.Start()
	s.logger.Info("Leaderboard scheduler started", map[string]any{"next_run": s.NextRun(s.timeProvider.Now())})
}

// Stop prevents new runs and waits for a running rebuild or ctx, whichever comes first
func (s *LeaderboardScheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Leaderboard scheduler stopped", nil)
	case <-ctx.Done():
		s.logger.Warn("Leaderboard scheduler stop timed out", map[string]any{"error": ctx.Err().Error()})
	}
}

// cronLogger adapts core.Logger to cron.Logger
type cronLogger struct {
	logger coreport.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, kvFields(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := kvFields(keysAndValues)
	fields["error"] = err.Error()
	l.logger.Error("cron: "+msg, fields)
}

func kvFields(keysAndValues []interface{}) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
