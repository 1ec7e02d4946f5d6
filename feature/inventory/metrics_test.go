package inventory

import (
	"testing"

	inv "inventory-control/core/inventory"
	"inventory-control/core/reconcile"
	"inventory-control/core/scan"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	store := inv.NewStore()
	store.Restore(inv.State{Theoretical: []inv.InventoryItem{{Code: "A", Qty: 2}}})
	svc := NewService(store, testScanConfig, reconcile.Config{}, metrics, zap.NewNop())

	_, err = svc.Scan("A")
	require.NoError(t, err)
	_, err = svc.Scan("A")
	require.NoError(t, err)
	_, err = svc.Scan("X")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.scans.WithLabelValues(string(scan.OutcomeAdded))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.scans.WithLabelValues(string(scan.OutcomeIncremented))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.scans.WithLabelValues(string(scan.OutcomeNotFound))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.incidents.WithLabelValues(string(inv.IncidentNotFound))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.real))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.history))

	svc.Reconcile()

	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.incidents.WithLabelValues(string(inv.IncidentNotFound))))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.incidents.WithLabelValues(string(inv.IncidentMismatch))))
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveScan(scan.OutcomeAdded)
		m.Observe(inv.NewStore())
	})
}
