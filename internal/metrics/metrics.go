package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes used as the "outcome" label of address lookup metrics.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics holds the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	EldersRegistered      prometheus.Counter
	EldersDeleted         prometheus.Counter
	ValidationFailures    prometheus.Counter
	AddressLookups        *prometheus.CounterVec
	AddressLookupDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EldersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "idosos_elders_registered_total",
			Help: "Total number of elders registered",
		}),
		EldersDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "idosos_elders_deleted_total",
			Help: "Total number of elders deleted",
		}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "idosos_registration_validation_failures_total",
			Help: "Total number of registrations rejected for missing required fields",
		}),
		AddressLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idosos_address_lookups_total",
			Help: "Total number of postal code lookups by outcome",
		}, []string{"outcome"}),
		AddressLookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "idosos_address_lookup_duration_seconds",
			Help:    "Duration of postal code lookups against the external provider",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

func (m *Metrics) IncrementEldersRegistered() {
	if m == nil {
		return
	}
	m.EldersRegistered.Inc()
}

func (m *Metrics) IncrementEldersDeleted() {
	if m == nil {
		return
	}
	m.EldersDeleted.Inc()
}

func (m *Metrics) IncrementValidationFailures() {
	if m == nil {
		return
	}
	m.ValidationFailures.Inc()
}

// ObserveAddressLookup records one lookup. Call with time.Now() taken before the call.
func (m *Metrics) ObserveAddressLookup(outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.AddressLookups.WithLabelValues(outcome).Inc()
	m.AddressLookupDuration.Observe(time.Since(start).Seconds())
}
