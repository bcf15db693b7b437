package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the investor compliance module.
// Tracks onboarding volume, transition outcomes, and the eligibility
// decision path the deal-commitment flow sits on.
type Metrics struct {
	InvestorsCreated    prometheus.Counter
	TransitionsApplied  *prometheus.CounterVec
	TransitionsRejected prometheus.Counter
	EligibilityChecks   *prometheus.CounterVec
	EligibilityDuration prometheus.Histogram
}

// New creates a new Metrics instance with all module metrics registered.
func New() *Metrics {
	return &Metrics{
		InvestorsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dealgate_investors_created_total",
			Help: "Total number of investor profiles created",
		}),
		TransitionsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dealgate_investor_transitions_total",
			Help: "Successful lifecycle transitions by target status",
		}, []string{"to"}),
		TransitionsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dealgate_investor_transitions_rejected_total",
			Help: "Transitions refused by the lifecycle table or sub-flow guards",
		}),
		EligibilityChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dealgate_eligibility_checks_total",
			Help: "Eligibility decisions by outcome",
		}, []string{"outcome"}),
		EligibilityDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dealgate_eligibility_check_duration_seconds",
			Help:    "Duration of CheckEligibilityForDeal (deal-commitment critical path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementInvestorsCreated records a successful profile creation.
func (m *Metrics) IncrementInvestorsCreated() {
	m.InvestorsCreated.Inc()
}

// IncrementTransition records a successful move to the given status.
func (m *Metrics) IncrementTransition(to string) {
	m.TransitionsApplied.WithLabelValues(to).Inc()
}

// IncrementTransitionRejected records a refused transition.
func (m *Metrics) IncrementTransitionRejected() {
	m.TransitionsRejected.Inc()
}

// IncrementEligibilityCheck records one decision outcome:
// eligible, eligible_requires_approval, or ineligible.
func (m *Metrics) IncrementEligibilityCheck(outcome string) {
	m.EligibilityChecks.WithLabelValues(outcome).Inc()
}

// ObserveEligibilityCheck records the duration of an eligibility decision.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveEligibilityCheck(start time.Time) {
	m.EligibilityDuration.Observe(time.Since(start).Seconds())
}
