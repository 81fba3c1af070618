package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exposed on /metrics.
var Registry = prometheus.NewRegistry()

var (
	requestDuration = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "marine",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route", "status"})

	experimentsCreated = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "marine",
		Name:      "experiments_created_total",
		Help:      "Experiments recorded, by experiment type.",
	}, []string{"type"})

	experimentsDeleted = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Namespace: "marine",
		Name:      "experiments_deleted_total",
		Help:      "Experiments deleted.",
	})

	validationFailures = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "marine",
		Name:      "validation_failures_total",
		Help:      "Rejected request fields.",
	}, []string{"field"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveRequest records one completed HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// IncExperimentCreated increments the created counter for an experiment type.
func IncExperimentCreated(experimentType string) {
	experimentsCreated.WithLabelValues(experimentType).Inc()
}

// IncExperimentDeleted increments the deleted counter.
func IncExperimentDeleted() {
	experimentsDeleted.Inc()
}

// IncValidationFailure counts a rejected request field.
func IncValidationFailure(field string) {
	validationFailures.WithLabelValues(field).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
