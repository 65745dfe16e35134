// Package metrics provides Prometheus metrics for lms-hub.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Login outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalid      = "invalid_credentials"
	OutcomeStorageError = "storage_error"
)

// Restore outcomes.
const (
	RestoreEmpty    = "empty"
	RestoreRestored = "restored"
	RestoreCorrupt  = "corrupt"
	RestoreError    = "error"
)

var (
	// LoginAttempts counts login attempts by outcome.
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lmshub",
			Name:      "login_attempts_total",
			Help:      "Total number of login attempts",
		},
		[]string{"outcome"},
	)

	// Logouts counts logouts.
	Logouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lmshub",
			Name:      "logouts_total",
			Help:      "Total number of logouts",
		},
	)

	// SessionRestores counts restore-on-boot results.
	SessionRestores = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lmshub",
			Name:      "session_restores_total",
			Help:      "Total number of session restores on boot",
		},
		[]string{"outcome"},
	)

	// ViewRenders counts rendered screens.
	ViewRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lmshub",
			Name:      "view_renders_total",
			Help:      "Total number of rendered screens",
		},
		[]string{"screen", "fallback"},
	)

	// KVStoreOperations counts storage port calls.
	KVStoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lmshub",
			Name:      "kvstore_operations_total",
			Help:      "Total number of key-value store operations",
		},
		[]string{"backend", "op", "status"},
	)

	// KVStoreDuration measures storage port latency.
	KVStoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lmshub",
			Name:      "kvstore_operation_duration_seconds",
			Help:      "Duration of key-value store operations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"backend", "op"},
	)

	// ActiveShells tracks application shells held in memory.
	ActiveShells = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lmshub",
			Name:      "active_shells",
			Help:      "Number of application shells held in memory",
		},
	)
)

// RecordLogin records a login attempt.
func RecordLogin(outcome string) {
	LoginAttempts.WithLabelValues(outcome).Inc()
}

// RecordLogout records a logout.
func RecordLogout() {
	Logouts.Inc()
}

// RecordRestore records a restore-on-boot result.
func RecordRestore(outcome string) {
	SessionRestores.WithLabelValues(outcome).Inc()
}

// RecordRender records a rendered screen.
func RecordRender(screen string, fallback bool) {
	ViewRenders.WithLabelValues(screen, strconv.FormatBool(fallback)).Inc()
}

// RecordKVOperation records one storage port call.
func RecordKVOperation(backend, op string, err error, started time.Time) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	KVStoreOperations.WithLabelValues(backend, op, status).Inc()
	KVStoreDuration.WithLabelValues(backend, op).Observe(time.Since(started).Seconds())
}

// SetActiveShells sets the number of shells held in memory.
func SetActiveShells(n int) {
	ActiveShells.Set(float64(n))
}
