package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Count of published events by type and result.",
	}, []string{"type", "result"})
	eventsSinkErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "sink_errors_total",
		Help:      "Count of events a sink failed to accept.",
	}, []string{"sink"})
)

// Events tracks event dispatch.
type Events struct{}

// NewEvents constructs an Events collector.
func NewEvents() *Events {
	return &Events{}
}

// ObservePublish records whether an event was queued or dropped.
func (m Events) ObservePublish(eventType string, queued bool) {
	result := "queued"
	if !queued {
		result = "dropped"
	}
	eventsPublishedTotal.WithLabelValues(eventType, result).Inc()
}

// ObserveSinkError records a sink failure.
func (m Events) ObserveSinkError(sink string) {
	eventsSinkErrorsTotal.WithLabelValues(sink).Inc()
}
