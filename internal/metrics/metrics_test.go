package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAddBudget(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry, "test")

	m.AddBudget(SourceInitial, decimal.RequireFromString("12.00"))
	m.AddBudget(SourceBatch, decimal.RequireFromString("25.00"))
	m.AddBudget(SourceBatch, decimal.RequireFromString("2.50"))

	assert.Equal(t, 12.0, testutil.ToFloat64(m.budgetAdded.WithLabelValues(SourceInitial)))
	assert.Equal(t, 27.5, testutil.ToFloat64(m.budgetAdded.WithLabelValues(SourceBatch)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.budgetUpdates.WithLabelValues(SourceBatch)))
}

func TestIncTransition(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry, "")

	m.IncTransition("low_spend", "high_spend_waiting")
	m.IncTransition("low_spend", "high_spend_waiting")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("low_spend", "high_spend_waiting")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncTransition("a", "b")
		m.IncAdapterError("pause")
		m.AddBudget(SourceBatch, decimal.NewFromInt(1))
		m.SetPendingURLs(3)
		m.SetArmedMonitors(1)
		m.IncCycleReset()
		m.IncThresholdRepair()
		m.IncTickPanic()
	})
}
