package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generatorRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "generator",
		Name:      "requests_total",
		Help:      "Count of password generation requests.",
	}, []string{"source", "status"})
	generatorRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "generator",
		Name:      "request_duration_seconds",
		Help:      "Duration of password generation requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})
)

// Generator tracks password generation calls.
type Generator struct{}

// NewGenerator constructs a Generator collector.
func NewGenerator() *Generator {
	return &Generator{}
}

// Observe records a single generation call outcome and duration.
// source is "external" or "fallback".
func (m Generator) Observe(source string, err error, started time.Time) {
	s := status(err)
	generatorRequestsTotal.WithLabelValues(source, s).Inc()
	generatorRequestDuration.WithLabelValues(source, s).Observe(time.Since(started).Seconds())
}
