package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sqliteRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sqlite_repository",
		Name:      "operations_total",
		Help:      "Count of authoritative store operations.",
	}, []string{"operation", "status"})
	sqliteRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sqlite_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of authoritative store operations.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "status"})
)

// SQLiteRepository tracks metrics for SQLite repository operations.
type SQLiteRepository struct{}

// NewSQLiteRepository creates a SQLiteRepository metrics collector.
func NewSQLiteRepository() *SQLiteRepository {
	return &SQLiteRepository{}
}

// Observe records duration and status of a repository operation.
func (m SQLiteRepository) Observe(operation string, err error, started time.Time) {
	s := status(err)
	sqliteRepositoryRequestsTotal.WithLabelValues(operation, s).Inc()
	sqliteRepositoryRequestDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}
