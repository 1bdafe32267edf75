package selection

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Skip reasons used as the "reason" label of the skipped-patterns counter.
const (
	reasonTooLarge         = "too_large"
	reasonCollectionBudget = "collection_budget"
	reasonNotUseful        = "not_useful"
)

// metrics groups the selection collectors. A nil *metrics records nothing.
type metrics struct {
	evaluated        prometheus.Counter
	accepted         prometheus.Counter
	skipped          *prometheus.CounterVec
	solveDuration    prometheus.Histogram
	collectionStates prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	var (
		m   metrics
		err error
	)
	if m.evaluated, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pdb_selection_patterns_evaluated_total",
		Help: "Projections built during pattern selection",
	})); err != nil {
		return nil, err
	}
	if m.accepted, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pdb_selection_patterns_accepted_total",
		Help: "Projections added to the collection",
	})); err != nil {
		return nil, err
	}
	if m.skipped, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pdb_selection_patterns_skipped_total",
		Help: "Candidate patterns skipped, by reason",
	}, []string{"reason"})); err != nil {
		return nil, err
	}
	if m.solveDuration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pdb_selection_solve_duration_seconds",
		Help:    "Goal distance computation time per projection",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})); err != nil {
		return nil, err
	}
	if m.collectionStates, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pdb_selection_collection_states",
		Help: "Summed abstract state count of the current collection",
	})); err != nil {
		return nil, err
	}

	return &m, nil
}

// register adds c to reg, reusing an identical collector registered by an
// earlier run.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, err
}

func (m *metrics) incEvaluated() {
	if m != nil {
		m.evaluated.Inc()
	}
}

func (m *metrics) incAccepted(collectionStates int64) {
	if m != nil {
		m.accepted.Inc()
		m.collectionStates.Set(float64(collectionStates))
	}
}

func (m *metrics) incSkipped(reason string) {
	if m != nil {
		m.skipped.WithLabelValues(reason).Inc()
	}
}

func (m *metrics) observeSolve(seconds float64) {
	if m != nil {
		m.solveDuration.Observe(seconds)
	}
}
