package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schedulerChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "checks_total",
		Help:      "Count of sweep checks.",
	}, []string{"check", "status"})
	schedulerCheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "check_duration_seconds",
		Help:      "Duration of sweep checks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"check", "status"})
	schedulerCheckBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "check_blocks",
		Help:      "Number of blocks handled per sweep check.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"check"})
)

// Scheduler tracks the timeout sweep.
type Scheduler struct{}

// NewScheduler constructs a Scheduler collector.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// ObserveCheck records one check of a sweep.
func (m Scheduler) ObserveCheck(check string, err error, blocks int, started time.Time) {
	s := status(err)
	schedulerChecksTotal.WithLabelValues(check, s).Inc()
	schedulerCheckDuration.WithLabelValues(check, s).Observe(time.Since(started).Seconds())
	schedulerCheckBlocks.WithLabelValues(check).Observe(float64(blocks))
}
