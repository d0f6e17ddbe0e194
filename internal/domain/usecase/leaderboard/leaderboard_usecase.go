package leaderboard

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/messaging"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
)

// LeaderboardUseCase maintains the precomputed leaderboard
type LeaderboardUseCase struct {
	uow          persistence.UnitOfWork
	publisher    messaging.EventPublisher
	metrics      coreport.MetricsRecorder
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLeaderboardUseCase creates a new LeaderboardUseCase
func NewLeaderboardUseCase(
	uow persistence.UnitOfWork,
	publisher messaging.EventPublisher,
	metrics coreport.MetricsRecorder,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LeaderboardUseCase {
	return &LeaderboardUseCase{
		uow:          uow,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Rebuild recomputes every row from settled stakes and swaps the table in one transaction.
// Running it twice without new settlements yields identical rows.
func (l *LeaderboardUseCase) Rebuild(ctx context.Context) (int, error) {
	started := l.timeProvider.Now()
	var rows int

	err := persistence.RunInTransaction(ctx, l.uow, func(txCtx context.Context) error {
		settled, err := l.uow.GetStakeRepository(txCtx).ListSettled(txCtx)
		if err != nil {
			return err
		}
		entries := entity.BuildLeaderboard(settled, started)
		rows = len(entries)
		return l.uow.GetLeaderboardRepository(txCtx).ReplaceAll(txCtx, entries)
	})
	if err != nil {
		l.metrics.OperationFailed("rebuild_leaderboard", errs.ErrorCode(err))
		l.logger.Error("Failed to rebuild leaderboard", map[string]any{
			"error": err.Error(),
		})
		return 0, err
	}

	took := l.timeProvider.Since(started).Std()
	l.metrics.LeaderboardRebuilt(rows, took)
	l.logger.Info("Leaderboard rebuilt", map[string]any{
		"rows":    rows,
		"took_ms": took.Milliseconds(),
	})
	messaging.PublishBestEffort(ctx, l.publisher, l.logger, entity.NewDomainEvent(
		entity.EventLeaderboardRebuilt, "leaderboard", "", map[string]any{"rows": rows}, started))

	return rows, nil
}

// Top returns the first limit rows ordered by sortBy
func (l *LeaderboardUseCase) Top(ctx context.Context, sortBy string, limit int) ([]*entity.LeaderboardEntry, error) {
	by, err := entity.ParseLeaderboardSort(sortBy)
	if err != nil {
		return nil, err
	}
	return l.uow.GetLeaderboardRepository(ctx).Top(ctx, by, entity.ClampLeaderboardLimit(limit))
}
