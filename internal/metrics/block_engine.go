package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_engine",
		Name:      "submissions_total",
		Help:      "Count of submissions by outcome.",
	}, []string{"outcome"})
	submissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_engine",
		Name:      "submission_duration_seconds",
		Help:      "Duration of submissions by outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_engine",
		Name:      "transitions_total",
		Help:      "Count of applied block status transitions.",
	}, []string{"to", "trigger"})
)

// BlockEngine tracks the block state machine.
type BlockEngine struct{}

// NewBlockEngine constructs a BlockEngine collector.
func NewBlockEngine() *BlockEngine {
	return &BlockEngine{}
}

// ObserveSubmission records a submission outcome, e.g. "accepted", "winner" or an error kind.
func (m BlockEngine) ObserveSubmission(outcome string, started time.Time) {
	submissionsTotal.WithLabelValues(outcome).Inc()
	submissionDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveTransition records an applied transition to status caused by trigger.
func (m BlockEngine) ObserveTransition(to, trigger string) {
	transitionsTotal.WithLabelValues(to, trigger).Inc()
}
