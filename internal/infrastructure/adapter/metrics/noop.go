package metrics

import (
	"time"

	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
)

// NoopRecorder discards all metrics
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (NoopRecorder) StakePlaced(string, int64)                {}
func (NoopRecorder) PropositionResolved(string, int64, int64) {}
func (NoopRecorder) GrantClaimed(int64)                       {}
func (NoopRecorder) LeaderboardRebuilt(int, time.Duration)    {}
func (NoopRecorder) OperationFailed(string, int)              {}
func (NoopRecorder) DBPoolStats(int, int, int, int64)         {}

var _ coreport.MetricsRecorder = NoopRecorder{}
