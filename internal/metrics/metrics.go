package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Budget sources used as label values.
const (
	SourceInitial = "initial"
	SourceBatch   = "batch"
)

// Metrics captures controller health: transitions, adapter failures and the
// budget pushed to the ad network. A nil *Metrics is valid and records nothing.
type Metrics struct {
	transitions      *prometheus.CounterVec
	adapterErrors    *prometheus.CounterVec
	budgetUpdates    *prometheus.CounterVec
	budgetAdded      *prometheus.CounterVec
	thresholdRepairs prometheus.Counter
	cycleResets      prometheus.Counter
	pendingURLs      prometheus.Gauge
	armedMonitors    prometheus.Gauge
	tickDuration     prometheus.Histogram
	tickPanics       prometheus.Counter
}

// New registers the controller metrics on registerer. An empty namespace
// defaults to "spendguard".
func New(registerer prometheus.Registerer, namespace string) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		namespace = "spendguard"
	}

	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaign_transitions_total",
			Help:      "Campaign state transitions.",
		}, []string{"from", "to"}),
		adapterErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adapter_errors_total",
			Help:      "Failed ad network and spend report calls by operation.",
		}, []string{"op"}),
		budgetUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "budget_updates_total",
			Help:      "Remote budget updates by pricing source.",
		}, []string{"source"}),
		budgetAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "budget_added_dollars_total",
			Help:      "Budget added to remote campaigns by pricing source.",
		}, []string{"source"}),
		thresholdRepairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "threshold_repairs_total",
			Help:      "Campaigns whose activate threshold was widened.",
		}),
		cycleResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spend_cycle_resets_total",
			Help:      "Spend cycles cleared after spend fell below the boundary.",
		}),
		pendingURLs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_urls",
			Help:      "Late URLs waiting for their batch to flush.",
		}),
		armedMonitors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "armed_monitors",
			Help:      "Campaigns with an armed monitor timer.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Duration of one campaign evaluation tick.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		tickPanics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tick_panics_total",
			Help:      "Recovered panics inside scheduled ticks.",
		}),
	}

	registerer.MustRegister(
		m.transitions,
		m.adapterErrors,
		m.budgetUpdates,
		m.budgetAdded,
		m.thresholdRepairs,
		m.cycleResets,
		m.pendingURLs,
		m.armedMonitors,
		m.tickDuration,
		m.tickPanics,
	)
	return m
}

func (m *Metrics) IncTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) IncAdapterError(op string) {
	if m == nil {
		return
	}
	m.adapterErrors.WithLabelValues(op).Inc()
}

// AddBudget records one remote budget update adding amount.
func (m *Metrics) AddBudget(source string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.budgetUpdates.WithLabelValues(source).Inc()
	m.budgetAdded.WithLabelValues(source).Add(amount.InexactFloat64())
}

func (m *Metrics) IncThresholdRepair() {
	if m == nil {
		return
	}
	m.thresholdRepairs.Inc()
}

func (m *Metrics) IncCycleReset() {
	if m == nil {
		return
	}
	m.cycleResets.Inc()
}

func (m *Metrics) SetPendingURLs(n int) {
	if m == nil {
		return
	}
	m.pendingURLs.Set(float64(n))
}

func (m *Metrics) SetArmedMonitors(n int) {
	if m == nil {
		return
	}
	m.armedMonitors.Set(float64(n))
}

func (m *Metrics) ObserveTick(d time.Duration) {
	if m == nil {
		return
	}
	m.tickDuration.Observe(d.Seconds())
}

func (m *Metrics) IncTickPanic() {
	if m == nil {
		return
	}
	m.tickPanics.Inc()
}
