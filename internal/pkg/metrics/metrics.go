// Package metrics holds the Prometheus collectors of the web front-end.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Upstream (Manara API) metrics
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manara_upstream_requests_total",
			Help: "Requests to the mosque API by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "manara_upstream_request_duration_seconds",
			Help:    "Latency of requests to the mosque API",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)
)

// Search and map state metrics
var (
	SearchFetchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "manara_search_fetches_total",
			Help: "Fetches issued by filter/search changes",
		},
	)

	SearchStaleResponsesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "manara_search_stale_responses_total",
			Help: "Responses discarded because a newer request was already applied",
		},
	)

	MapWidgetsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "manara_map_widgets_active",
			Help: "Map widgets currently in the Ready state",
		},
	)

	MapInitFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "manara_map_init_failures_total",
			Help: "Map widget initializations that failed and fell back to an empty map",
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "manara_sessions_active",
			Help: "Browser sessions held in memory",
		},
	)
)

// Outcome labels
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// ObserveUpstream records one upstream call.
func ObserveUpstream(operation, outcome string, started time.Time) {
	UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
