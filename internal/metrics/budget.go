package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	budgetOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "budget",
		Name:      "operations_total",
		Help:      "Count of compute power operations by result.",
	}, []string{"operation", "result"})
	budgetRefilledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "budget",
		Name:      "refilled_minutes_total",
		Help:      "Minutes of refill credited to balances.",
	})
)

// Budget tracks the compute power gauge.
type Budget struct{}

// NewBudget constructs a Budget collector.
func NewBudget() *Budget {
	return &Budget{}
}

// ObserveConsume records a consume attempt.
func (m Budget) ObserveConsume(ok bool, err error) {
	result := "consumed"
	switch {
	case err != nil:
		result = "error"
	case !ok:
		result = "exhausted"
	}
	budgetOperationsTotal.WithLabelValues("consume", result).Inc()
}

// ObserveRefund records a refund.
func (m Budget) ObserveRefund(err error) {
	budgetOperationsTotal.WithLabelValues("refund", status(err)).Inc()
}

// ObserveRefill records an applied refill of minutes.
func (m Budget) ObserveRefill(minutes int) {
	budgetRefilledTotal.Add(float64(minutes))
}
