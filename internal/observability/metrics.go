package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "atelier_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "atelier_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// LikeToggles counts like/unlike mutations by resulting state.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "atelier_like_toggles_total",
		Help: "Total number of like toggles by resulting state",
	}, []string{"state"})

	// ArtworkSearches counts keyword searches.
	ArtworkSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atelier_artwork_searches_total",
		Help: "Total number of artwork keyword searches",
	})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// RecordLikeToggle increments the like toggle counter for the resulting state.
func RecordLikeToggle(liked bool) {
	state := "unliked"
	if liked {
		state = "liked"
	}
	LikeToggles.WithLabelValues(state).Inc()
}
