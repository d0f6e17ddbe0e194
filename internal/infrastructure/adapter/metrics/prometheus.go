package metrics

import (
	"net/http"
	"strconv"
	"time"

	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements core.MetricsRecorder with its own registry
type PrometheusRecorder struct {
	registry *prometheus.Registry

	stakesPlaced       *prometheus.CounterVec
	stakedUnits        *prometheus.CounterVec
	resolutions        *prometheus.CounterVec
	paidOutUnits       prometheus.Counter
	forfeitedUnits     prometheus.Counter
	grantsClaimed      prometheus.Counter
	grantedUnits       prometheus.Counter
	leaderboardRows    prometheus.Gauge
	leaderboardBuild   prometheus.Histogram
	operationFailures  *prometheus.CounterVec
	dbOpenConns        prometheus.Gauge
	dbInUseConns       prometheus.Gauge
	dbIdleConns        prometheus.Gauge
	dbWaitCount        prometheus.Gauge
	httpRequests       *prometheus.CounterVec
	httpRequestSeconds *prometheus.HistogramVec
}

// NewPrometheusRecorder creates and registers every collector under namespace
func NewPrometheusRecorder(namespace string) *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &PrometheusRecorder{
		registry: reg,
		stakesPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "stakes_placed_total", Help: "Accepted stakes by side",
		}, []string{"side"}),
		stakedUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "staked_units_total", Help: "Units staked by side",
		}, []string{"side"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "propositions_resolved_total", Help: "Resolved propositions by winning side",
		}, []string{"winning_side"}),
		paidOutUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "payout_units_total", Help: "Units paid to winners",
		}),
		forfeitedUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "forfeited_units_total", Help: "Units lost to rounding or empty winning sides",
		}),
		grantsClaimed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "daily_grants_claimed_total", Help: "Daily grants issued",
		}),
		grantedUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "daily_grant_units_total", Help: "Units issued by daily grants",
		}),
		leaderboardRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "leaderboard_rows", Help: "Rows written by the last leaderboard rebuild",
		}),
		leaderboardBuild: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "leaderboard_rebuild_seconds", Help: "Leaderboard rebuild duration",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "operation_failures_total", Help: "Rejected or failed operations by error code",
		}, []string{"operation", "code"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "db", Name: "open_connections", Help: "Open database connections",
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "db", Name: "in_use_connections", Help: "Database connections in use",
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "db", Name: "idle_connections", Help: "Idle database connections",
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "db", Name: "wait_count", Help: "Total waits for a database connection",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total", Help: "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		httpRequestSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds", Help: "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		r.stakesPlaced, r.stakedUnits, r.resolutions, r.paidOutUnits, r.forfeitedUnits,
		r.grantsClaimed, r.grantedUnits, r.leaderboardRows, r.leaderboardBuild,
		r.operationFailures, r.dbOpenConns, r.dbInUseConns, r.dbIdleConns, r.dbWaitCount,
		r.httpRequests, r.httpRequestSeconds,
	)
	return r
}

func (r *PrometheusRecorder) StakePlaced(side string, amount int64) {
	r.stakesPlaced.WithLabelValues(side).Inc()
	r.stakedUnits.WithLabelValues(side).Add(float64(amount))
}

func (r *PrometheusRecorder) PropositionResolved(winningSide string, paidOut int64, forfeited int64) {
	r.resolutions.WithLabelValues(winningSide).Inc()
	r.paidOutUnits.Add(float64(paidOut))
	r.forfeitedUnits.Add(float64(forfeited))
}

func (r *PrometheusRecorder) GrantClaimed(amount int64) {
	r.grantsClaimed.Inc()
	r.grantedUnits.Add(float64(amount))
}

func (r *PrometheusRecorder) LeaderboardRebuilt(rows int, took time.Duration) {
	r.leaderboardRows.Set(float64(rows))
	r.leaderboardBuild.Observe(took.Seconds())
}

func (r *PrometheusRecorder) OperationFailed(operation string, code int) {
	r.operationFailures.WithLabelValues(operation, strconv.Itoa(code)).Inc()
}

func (r *PrometheusRecorder) DBPoolStats(open, inUse, idle int, waitCount int64) {
	r.dbOpenConns.Set(float64(open))
	r.dbInUseConns.Set(float64(inUse))
	r.dbIdleConns.Set(float64(idle))
	r.dbWaitCount.Set(float64(waitCount))
}

// ObserveHTTP records one served request; route is the matched route pattern
func (r *PrometheusRecorder) ObserveHTTP(method, route string, status int, took time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpRequestSeconds.WithLabelValues(method, route).Observe(took.Seconds())
}

// Handler serves the registry in the prometheus exposition format
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

var _ coreport.MetricsRecorder = (*PrometheusRecorder)(nil)
