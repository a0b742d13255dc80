package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application metrics
type Metrics struct {
	PatientsRegistered    prometheus.Counter
	PatientsDeleted       prometheus.Counter
	AppointmentsBooked    prometheus.Counter
	AppointmentsCancelled prometheus.Counter
	ValidationFailures    *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates and registers all application metrics on a private
// registry, so each instance (including test instances) stands alone.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		PatientsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "patients_registered_total",
			Help:      "Total number of patients registered",
		}),
		PatientsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "patients_deleted_total",
			Help:      "Total number of patients deleted",
		}),
		AppointmentsBooked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_booked_total",
			Help:      "Total number of appointments booked",
		}),
		AppointmentsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_cancelled_total",
			Help:      "Total number of appointments cancelled",
		}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of rejected operations by error code",
		}, []string{"code"}),
		registry: registry,
	}
}

// RecordFailure counts one rejected operation under the given error code.
func (m *Metrics) RecordFailure(code string) {
	m.ValidationFailures.WithLabelValues(code).Inc()
}

// Handler serves the registry for the optional monitoring listener.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
