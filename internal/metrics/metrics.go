// Package metrics provides Prometheus metrics for the storefront.
package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	// SearchRequests counts searches by entity type ("all" for the aggregate) and outcome.
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopdrive",
			Name:      "search_requests_total",
			Help:      "Total number of search requests",
		},
		[]string{"type", "outcome"},
	)

	// SearchDuration measures search latency, store reads included.
	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shopdrive",
			Name:      "search_duration_seconds",
			Help:      "Duration of search requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"type"},
	)

	// SearchResults observes how many results each search returned.
	SearchResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shopdrive",
			Name:      "search_results",
			Help:      "Distribution of result counts per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"type"},
	)

	// AdminWrites counts content changes made through the admin API.
	AdminWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopdrive",
			Name:      "admin_writes_total",
			Help:      "Total number of admin content writes",
		},
		[]string{"kind", "op", "status"},
	)
)

// RecordSearch records one finished search.
func RecordSearch(kind, outcome string, started time.Time, results int) {
	SearchRequests.WithLabelValues(kind, outcome).Inc()
	SearchDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
	if outcome == OutcomeOK || outcome == OutcomeEmpty {
		SearchResults.WithLabelValues(kind).Observe(float64(results))
	}
}

func RecordAdminWrite(kind, op, status string) {
	AdminWrites.WithLabelValues(kind, op, status).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
