package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
)

// ConnectionPoolMetrics is a snapshot of the pool's state
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
}

// ConnectionPoolMonitor samples the connection pool on an interval and
// publishes the gauges through the metrics recorder
type ConnectionPoolMonitor struct {
	stats    func() (sql.DBStats, error)
	logger   coreport.Logger
	metrics  coreport.MetricsRecorder
	mutex    sync.RWMutex
	latest   *ConnectionPoolMetrics
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a monitor reading stats from statsFn
func NewConnectionPoolMonitor(statsFn func() (sql.DBStats, error), metrics coreport.MetricsRecorder, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		stats:    statsFn,
		logger:   logger,
		metrics:  metrics,
		stopChan: make(chan struct{}),
	}
}

// Start collects once and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collect(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collect(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring. It is safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// GetMetrics returns the most recent snapshot
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.latest == nil {
		return ConnectionPoolMetrics{}
	}
	return *m.latest
}

func (m *ConnectionPoolMonitor) collect() error {
	stats, err := m.stats()
	if err != nil {
		return fmt.Errorf("failed to read pool stats: %w", err)
	}

	snapshot := &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}

	m.mutex.Lock()
	m.latest = snapshot
	m.mutex.Unlock()

	if m.metrics != nil {
		m.metrics.DBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle, stats.WaitCount)
	}

	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*0.8 {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}

	return nil
}
