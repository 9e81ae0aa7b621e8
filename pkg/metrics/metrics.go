// Package metrics provides Prometheus instrumentation for dataprep cleaning
// operations. Each cleaning call records how many rows it examined, how many
// it dropped, and how long it took, labeled by operation name.
//
// Metrics are registered once at package load through promauto; the collector
// type is a thin, thread-safe front over the shared metric vectors so each
// component can record under its own name.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RowsExamined counts input rows seen per operation
	RowsExamined = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataprep_rows_examined_total",
			Help: "Total input rows examined, labeled by operation",
		},
		[]string{"component", "operation"},
	)

	// RowsDropped counts rows removed per operation
	RowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataprep_rows_dropped_total",
			Help: "Total rows removed from the output, labeled by operation",
		},
		[]string{"component", "operation"},
	)

	// CellsRewritten counts individual cell values changed per operation
	CellsRewritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataprep_cells_rewritten_total",
			Help: "Total cell values rewritten, labeled by operation",
		},
		[]string{"component", "operation"},
	)

	// OperationErrors counts failed operations by error category
	OperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataprep_operation_errors_total",
			Help: "Total failed operations, labeled by operation and error type",
		},
		[]string{"component", "operation", "error_type"},
	)

	// OperationDuration tracks wall-clock duration per operation
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataprep_operation_duration_seconds",
			Help:    "Operation duration in seconds, labeled by operation",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
		[]string{"component", "operation"},
	)
)

// Collector records metrics for a single component instance
type Collector struct {
	component string
}

// NewCollector creates a collector labeling all metrics with the component name
func NewCollector(component string) *Collector {
	return &Collector{component: component}
}

// RecordRows records examined and dropped row counts for an operation
func (c *Collector) RecordRows(operation string, examined, dropped int) {
	RowsExamined.WithLabelValues(c.component, operation).Add(float64(examined))
	RowsDropped.WithLabelValues(c.component, operation).Add(float64(dropped))
}

// RecordCells records the number of cell values an operation rewrote
func (c *Collector) RecordCells(operation string, rewritten int) {
	CellsRewritten.WithLabelValues(c.component, operation).Add(float64(rewritten))
}

// RecordError records a failed operation by error category
func (c *Collector) RecordError(operation, errorType string) {
	OperationErrors.WithLabelValues(c.component, operation, errorType).Inc()
}

// Timer measures the duration of a single operation
type Timer struct {
	collector *Collector
	operation string
	start     time.Time
}

// NewTimer starts a timer for the given operation
func (c *Collector) NewTimer(operation string) *Timer {
	return &Timer{
		collector: c,
		operation: operation,
		start:     time.Now(),
	}
}

// Stop records the elapsed duration and returns it
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	OperationDuration.
		WithLabelValues(t.collector.component, t.operation).
		Observe(elapsed.Seconds())
	return elapsed
}
