package core

import "time"

// MetricsRecorder collects operational counters for the wagering engine
type MetricsRecorder interface {
	// StakePlaced counts an accepted stake and its amount
	StakePlaced(side string, amount int64)
	// PropositionResolved counts a settlement and the units paid out
	PropositionResolved(winningSide string, paidOut int64, forfeited int64)
	// GrantClaimed counts a daily grant issuance
	GrantClaimed(amount int64)
	// LeaderboardRebuilt records the duration and size of a rebuild
	LeaderboardRebuilt(rows int, took time.Duration)
	// OperationFailed counts a rejected or failed operation by error code
	OperationFailed(operation string, code int)
	// DBPoolStats publishes connection pool gauges
	DBPoolStats(open, inUse, idle int, waitCount int64)
}
