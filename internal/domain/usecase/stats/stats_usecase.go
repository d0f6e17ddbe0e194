package stats

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
)

// cachedStats is the cache representation of a StatsResult. Generation ties
// the entry to the user's generation marker at the time it was computed.
type cachedStats struct {
	Stats      *entity.UserStats `json:"stats"`
	ETag       string            `json:"etag"`
	Generation string            `json:"generation"`
}

// StatsUseCase builds per-user statistics documents
type StatsUseCase struct {
	uow          persistence.UnitOfWork
	cache        coreport.Cache
	ttl          time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewStatsUseCase creates a new StatsUseCase. cache may be nil.
func NewStatsUseCase(
	uow persistence.UnitOfWork,
	cache coreport.Cache,
	ttl time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		uow:          uow,
		cache:        cache,
		ttl:          ttl,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func cacheKey(userID string, rangeDays int) string {
	return fmt.Sprintf("stats:%s:%d", userID, rangeDays)
}

// generationKey holds a marker that changes whenever the user's stakes do.
// Entries written under an older marker are misses.
func generationKey(userID string) string {
	return fmt.Sprintf("stats:%s:gen", userID)
}

// GetUserStats aggregates the user's stakes over the last rangeDays days.
// A rangeDays of 0 selects the default window.
func (s *StatsUseCase) GetUserStats(ctx context.Context, userID string, rangeDays int) (*usecase.StatsResult, error) {
	if rangeDays == 0 {
		rangeDays = entity.DefaultStatsRangeDays
	}
	if rangeDays < 1 || rangeDays > entity.MaxStatsRangeDays {
		return nil, errs.NewValidationError("range", "must be between 1 and 365 days")
	}

	key := cacheKey(userID, rangeDays)
	generation := s.generation(ctx, userID)
	if cached := s.fromCache(ctx, key, generation); cached != nil {
		return cached, nil
	}

	if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}

	since := entity.StatsWindowStart(s.timeProvider.Now(), rangeDays)
	records, err := s.uow.GetStakeRepository(ctx).ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	stats := entity.BuildUserStats(records)
	body, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stats: %w", err)
	}
	sum := sha256.Sum256(body)
	result := &usecase.StatsResult{Stats: stats, ETag: hex.EncodeToString(sum[:])}

	s.toCache(ctx, key, generation, result)
	s.logger.Debug("Stats computed", map[string]any{
		"user_id":    userID,
		"range_days": rangeDays,
		"stakes":     len(records),
	})
	return result, nil
}

// Invalidate retires every cached statistics document of the given users
func (s *StatsUseCase) Invalidate(ctx context.Context, userIDs ...string) {
	if s.cache == nil {
		return
	}
	seen := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		if _, dup := seen[id]; dup || id == "" {
			continue
		}
		seen[id] = struct{}{}
		if err := s.cache.Delete(ctx, generationKey(id)); err != nil {
			s.logger.Warn("Stats cache invalidation failed", map[string]any{"user_id": id, "error": err.Error()})
		}
	}
}

// generation returns the user's current marker, starting a new one when none
// exists. An empty result disables caching for this request.
func (s *StatsUseCase) generation(ctx context.Context, userID string) string {
	if s.cache == nil || s.ttl <= 0 {
		return ""
	}
	key := generationKey(userID)
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Stats cache read failed", map[string]any{"key": key, "error": err.Error()})
		return ""
	}
	if ok && len(data) > 0 {
		return string(data)
	}

	generation := uuid.NewString()
	if err := s.cache.Set(ctx, key, []byte(generation), s.ttl); err != nil {
		s.logger.Warn("Stats cache write failed", map[string]any{"key": key, "error": err.Error()})
		return ""
	}
	return generation
}

func (s *StatsUseCase) fromCache(ctx context.Context, key, generation string) *usecase.StatsResult {
	if generation == "" {
		return nil
	}
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Stats cache read failed", map[string]any{"key": key, "error": err.Error()})
		return nil
	}
	if !ok {
		return nil
	}
	var cached cachedStats
	if err := json.Unmarshal(data, &cached); err != nil || cached.Stats == nil {
		s.logger.Warn("Discarding unreadable stats cache entry", map[string]any{"key": key})
		return nil
	}
	if cached.Generation != generation {
		return nil
	}
	return &usecase.StatsResult{Stats: cached.Stats, ETag: cached.ETag}
}

func (s *StatsUseCase) toCache(ctx context.Context, key, generation string, result *usecase.StatsResult) {
	if generation == "" {
		return
	}
	data, err := json.Marshal(cachedStats{Stats: result.Stats, ETag: result.ETag, Generation: generation})
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("Stats cache write failed", map[string]any{"key": key, "error": err.Error()})
	}
}
