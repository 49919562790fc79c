package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "evtele_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// CounterIncrements counts view/like counter bumps by target and kind.
	CounterIncrements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evtele_counter_increments_total",
		Help: "Total number of view and like counter increments",
	}, []string{"target", "kind"})

	// CommentThroughput counts comments accepted per scope kind.
	CommentThroughput = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evtele_comments_total",
		Help: "Total number of comments accepted",
	}, []string{"scope_kind"})

	// WebSocketScopeConnections is the gauge of live-feed subscribers per scope.
	WebSocketScopeConnections = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "evtele_websocket_scope_connections",
		Help: "Number of WebSocket subscribers per comment scope",
	}, []string{"scope"})

	// WebSocketConnectionsTotal is the gauge of total WebSocket connections.
	WebSocketConnectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "evtele_websocket_connections_total",
		Help: "Total number of active WebSocket connections",
	})

	// WebSocketEventsTotal counts WebSocket events by type.
	WebSocketEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evtele_websocket_events_total",
		Help: "Total WebSocket events by type",
	}, []string{"event_type"})

	// WebSocketBackpressureDrops counts messages dropped due to backpressure.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evtele_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"hub", "reason"})

	// AIRequestLatency records latency of calls to the text-generation service.
	AIRequestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "evtele_ai_request_latency_seconds",
		Help:    "Latency of text-generation service calls in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}

// RecordCounterIncrement increments the counter-bump metric.
// target is "replay" or "channel"; kind is "views" or "likes".
func RecordCounterIncrement(target, kind string) {
	CounterIncrements.WithLabelValues(target, kind).Inc()
}

// RecordComment increments the accepted-comments metric.
func RecordComment(scopeKind string) {
	CommentThroughput.WithLabelValues(scopeKind).Inc()
}
