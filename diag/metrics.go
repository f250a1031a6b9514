package diag

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts dispatched operators and reported diagnostics.
type Metrics struct {
	Operators   *prometheus.CounterVec
	Diagnostics *prometheus.CounterVec
}

// NewMetrics creates unregistered counters under namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Operators: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operators_dispatched_total",
			Help:      "Content stream operators dispatched, by mnemonic",
		}, []string{"operator"}),
		Diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diagnostics_total",
			Help:      "Recoverable content stream problems, by kind",
		}, []string{"kind"}),
	}
}

// Register adds the counters to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if err := reg.Register(m.Operators); err != nil {
		return err
	}
	return reg.Register(m.Diagnostics)
}

// ObserveOperator counts one dispatched operator.
func (m *Metrics) ObserveOperator(name string) {
	m.Operators.WithLabelValues(name).Inc()
}

// Report counts d by kind.
func (m *Metrics) Report(d Diagnostic) {
	m.Diagnostics.WithLabelValues(d.Kind.String()).Inc()
}
