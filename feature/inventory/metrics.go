package inventory

import (
	inv "inventory-control/core/inventory"
	"inventory-control/core/scan"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the session counters to Prometheus. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	scans       *prometheus.CounterVec
	incidents   *prometheus.GaugeVec
	theoretical prometheus.Gauge
	real        prometheus.Gauge
	history     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "scans_total",
			Help:      "Processed scans by outcome.",
		}, []string{"outcome"}),
		incidents: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "incidents",
			Help:      "Current incidents by type.",
		}, []string{"type"}),
		theoretical: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "theoretical_items",
			Help:      "Items in the theoretical inventory.",
		}),
		real: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "real_records",
			Help:      "Records in the counted inventory.",
		}),
		history: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "audit_entries",
			Help:      "Entries in the audit log.",
		}),
	}

	for _, c := range []prometheus.Collector{m.scans, m.incidents, m.theoretical, m.real, m.history} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveScan counts one processed scan.
func (m *Metrics) ObserveScan(outcome scan.Outcome) {
	if m == nil {
		return
	}
	m.scans.WithLabelValues(string(outcome)).Inc()
}

// Observe refreshes the gauges from the store.
func (m *Metrics) Observe(store *inv.Store) {
	if m == nil {
		return
	}
	m.theoretical.Set(float64(len(store.Theoretical())))
	m.real.Set(float64(len(store.Real())))
	m.history.Set(float64(len(store.History())))

	counts := map[inv.IncidentType]int{
		inv.IncidentMissing:    0,
		inv.IncidentMismatch:   0,
		inv.IncidentUnexpected: 0,
		inv.IncidentNotFound:   0,
	}
	for _, incident := range store.Incidents() {
		counts[incident.Type]++
	}
	for typ, n := range counts {
		m.incidents.WithLabelValues(string(typ)).Set(float64(n))
	}
}
