package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the vault module.
// Tracks role mutations, authorization failures, and operation latency.
type Metrics struct {
	RolesGranted      prometheus.Counter
	RolesRevoked      prometheus.Counter
	GuardFailures     *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with all vault metrics registered on the
// default registry.
func New() *Metrics {
	return &Metrics{
		RolesGranted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warden_roles_granted_total",
			Help: "Total number of role grants applied",
		}),
		RolesRevoked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warden_roles_revoked_total",
			Help: "Total number of role revocations applied",
		}),
		GuardFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_guard_failures_total",
			Help: "Total number of rejected privileged calls, by failure kind",
		}, []string{"kind"}),
		OperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "warden_operation_duration_seconds",
			Help:    "Duration of vault facade operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

// IncGuardFailure records a rejected privileged call.
func (m *Metrics) IncGuardFailure(kind string) {
	m.GuardFailures.WithLabelValues(kind).Inc()
}

// ObserveOperation records the duration of a facade operation.
// Call with time.Now() captured at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
