package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	mockcore "github.com/mensunw/people-bets/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionPoolMonitor_PublishesGauges(t *testing.T) {
	metrics := mockcore.NewMockMetricsRecorder(t)
	metrics.EXPECT().DBPoolStats(4, 3, 1, int64(2)).Return().Once()

	stats := sql.DBStats{OpenConnections: 4, InUse: 3, Idle: 1, WaitCount: 2, MaxOpenConnections: 10}
	monitor := NewConnectionPoolMonitor(func() (sql.DBStats, error) { return stats, nil }, metrics, logger.NewNoopLogger())

	require.NoError(t, monitor.Start(time.Hour))
	defer monitor.Stop()

	got := monitor.GetMetrics()
	assert.Equal(t, 4, got.OpenConnections)
	assert.Equal(t, 3, got.InUse)
	assert.Equal(t, 10, got.MaxOpenConnections)
}

func TestConnectionPoolMonitor_StartFailsWhenStatsUnavailable(t *testing.T) {
	monitor := NewConnectionPoolMonitor(func() (sql.DBStats, error) {
		return sql.DBStats{}, errors.New("pool closed")
	}, nil, logger.NewNoopLogger())

	assert.Error(t, monitor.Start(time.Hour))
	assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())
	monitor.Stop()
	monitor.Stop()
}
