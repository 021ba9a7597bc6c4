// Package metrics provides Prometheus metrics for sai-core.
//
// This package exposes counters and histograms for the pieces that sit
// on the hot path of every SAI call: the validator entry points, the
// shadow database's reference-count table, and the virtual-switch
// driver's notification dispatch. Metrics are exposed via the
// /metrics endpoint the cmd/saivsd process serves.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace is the Prometheus metrics namespace.
	Namespace = "sai_core"

	SubsystemValidator = "validator"
	SubsystemDB        = "db"
	SubsystemDriver    = "driver"
)

var (
	registerOnce sync.Once

	// Registry is the process-wide metrics registry, separate from the
	// global default so tests can construct an isolated one.
	Registry = prometheus.NewRegistry()

	// ValidatorCallDuration measures how long each entry point
	// (pre_create, post_set, ...) takes per object type.
	ValidatorCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: SubsystemValidator,
			Name:      "call_duration_seconds",
			Help:      "Time taken by each validator entry point in seconds",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
		[]string{"entry_point", "object_type"},
	)

	// ValidatorCallTotal counts validator entry-point invocations by
	// their resulting status.
	ValidatorCallTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SubsystemValidator,
			Name:      "call_total",
			Help:      "Total number of validator entry-point invocations",
		},
		[]string{"entry_point", "object_type", "status"},
	)

	// DBObjectCount tracks the live object count per object type in
	// the shadow database.
	DBObjectCount = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: SubsystemDB,
			Name:      "object_count",
			Help:      "Number of live objects per object type in the shadow database",
		},
		[]string{"object_type"},
	)

	// DBRefCountViolationTotal counts remove attempts blocked by a
	// non-zero reference count (§4.4.3's "object still referenced"
	// rule).
	DBRefCountViolationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SubsystemDB,
			Name:      "ref_count_violation_total",
			Help:      "Total number of remove calls rejected due to a non-zero reference count",
		},
		[]string{"object_type"},
	)

	// DriverNotificationTotal counts notifications the virtual-switch
	// driver dispatches (FDB learn/age events).
	DriverNotificationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SubsystemDriver,
			Name:      "notification_total",
			Help:      "Total number of notifications dispatched by the virtual switch driver",
		},
		[]string{"notification", "event_type"},
	)
)

// Register registers all metrics with Registry. Safe to call multiple
// times; registration happens once.
func Register() {
	registerOnce.Do(func() {
		Registry.MustRegister(ValidatorCallDuration)
		Registry.MustRegister(ValidatorCallTotal)
		Registry.MustRegister(DBObjectCount)
		Registry.MustRegister(DBRefCountViolationTotal)
		Registry.MustRegister(DriverNotificationTotal)
	})
}
