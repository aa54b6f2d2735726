package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation modes reported on temple_tax_calculations_total.
const (
	ModeCumulative = "cumulative"
	ModeSingleYear = "single_year"
)

// Metrics provides observability for the tax engine and its HTTP surface.
type Metrics struct {
	Calculations        *prometheus.CounterVec
	CalculationDuration prometheus.Histogram
	BulkToggles         prometheus.Counter
	PolicyUpserts       prometheus.Counter
	Registrations       *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
}

// New registers all metrics on reg. Pass prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "temple_tax_calculations_total",
			Help: "Total number of liability calculations by mode",
		}, []string{"mode"}),
		CalculationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "temple_tax_calculation_duration_seconds",
			Help:    "Duration of liability lookups including snapshot loads",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		BulkToggles: factory.NewCounter(prometheus.CounterOpts{
			Name: "temple_tax_policy_bulk_toggles_total",
			Help: "Total number of include-previous-years bulk toggles",
		}),
		PolicyUpserts: factory.NewCounter(prometheus.CounterOpts{
			Name: "temple_tax_policy_upserts_total",
			Help: "Total number of tax policy create or update operations",
		}),
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "temple_tax_registrations_total",
			Help: "Total number of tax registration submissions by registrant kind",
		}, []string{"registrant"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "temple_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
	}
}

// ObserveCalculation records one calculation of the given mode.
// Call with time.Now() taken at the start of the operation.
func (m *Metrics) ObserveCalculation(mode string, start time.Time) {
	if m == nil {
		return
	}
	m.Calculations.WithLabelValues(mode).Inc()
	m.CalculationDuration.Observe(time.Since(start).Seconds())
}

// IncrementBulkToggle records a successful bulk toggle.
func (m *Metrics) IncrementBulkToggle() {
	if m == nil {
		return
	}
	m.BulkToggles.Inc()
}

// IncrementPolicyUpsert records a successful policy upsert.
func (m *Metrics) IncrementPolicyUpsert() {
	if m == nil {
		return
	}
	m.PolicyUpserts.Inc()
}

// IncrementRegistration records a saved registration, labelled new or existing.
func (m *Metrics) IncrementRegistration(isNew bool) {
	if m == nil {
		return
	}
	label := "existing"
	if isNew {
		label = "new"
	}
	m.Registrations.WithLabelValues(label).Inc()
}
