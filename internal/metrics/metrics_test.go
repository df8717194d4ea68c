package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementEldersRegistered()
	m.IncrementEldersRegistered()
	m.IncrementEldersDeleted()
	m.IncrementValidationFailures()
	m.ObserveAddressLookup(OutcomeNotFound, time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EldersRegistered))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EldersDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AddressLookups.WithLabelValues(OutcomeNotFound)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.AddressLookups.WithLabelValues(OutcomeFound)))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementEldersRegistered()
		m.IncrementEldersDeleted()
		m.IncrementValidationFailures()
		m.ObserveAddressLookup(OutcomeError, time.Now())
	})
}
