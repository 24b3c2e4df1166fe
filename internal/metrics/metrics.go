package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry contient les collecteurs propres au storefront
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	backendCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "backend",
			Name:      "calls_total",
			Help:      "Total number of calls to the catalog/order backend.",
		},
		[]string{"endpoint", "outcome"},
	)

	backendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "backend",
			Name:      "call_duration_seconds",
			Help:      "Duration of calls to the backend.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"endpoint"},
	)

	staleSearches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "search",
			Name:      "stale_responses_total",
			Help:      "Search responses discarded because a newer search was already applied.",
		},
	)

	wishlistCompensations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "wishlist",
			Name:      "compensations_total",
			Help:      "Optimistic wishlist mutations rolled back after a failed request.",
		},
		[]string{"action"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		backendCalls,
		backendDuration,
		staleSearches,
		wishlistCompensations,
	)
}

// Handler expose le registre au format Prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware mesure chaque requête gin
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// ObserveBackendCall enregistre un appel au backend
func ObserveBackendCall(endpoint string, started time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	backendCalls.WithLabelValues(endpoint, outcome).Inc()
	backendDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}

func RecordStaleSearch() {
	staleSearches.Inc()
}

func RecordCompensation(action string) {
	wishlistCompensations.WithLabelValues(action).Inc()
}
