package reconcile

import (
	"testing"
	"time"

	"inventory-control/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(theo []inventory.InventoryItem, real []inventory.RealRecord, incidents []inventory.Incident) *inventory.Store {
	s := inventory.NewStore()
	s.Restore(inventory.State{Theoretical: theo, Real: real, Incidents: incidents})
	return s
}

// TestCompute_MissingAndUnexpected checks the canonical A/B/C scenario.
func TestCompute_MissingAndUnexpected(t *testing.T) {
	theo := []inventory.InventoryItem{{Code: "A", Qty: 5}, {Code: "B", Qty: 3}}
	real := []inventory.RealRecord{{Code: "A", Qty: 5}, {Code: "C", Qty: 2}}

	got := Compute(theo, real)

	want := []inventory.Incident{
		{Code: "B", Expected: inventory.IntPtr(3), Actual: inventory.IntPtr(0), Type: inventory.IncidentMissing},
		{Code: "C", Expected: inventory.IntPtr(0), Actual: inventory.IntPtr(2), Type: inventory.IncidentUnexpected},
	}
	assert.Equal(t, want, got)
}

func TestCompute_Mismatch(t *testing.T) {
	theo := []inventory.InventoryItem{{Code: "A", Name: "Tornillo", Qty: 5}}
	real := []inventory.RealRecord{{Code: "A", Name: "otro", Qty: 7}}

	got := Compute(theo, real)

	require.Len(t, got, 1)
	assert.Equal(t, inventory.IncidentMismatch, got[0].Type)
	assert.Equal(t, "Tornillo", got[0].Name, "theoretical name wins")
	assert.Equal(t, 5, *got[0].Expected)
	assert.Equal(t, 7, *got[0].Actual)
}

func TestCompute_Ordering(t *testing.T) {
	theo := []inventory.InventoryItem{
		{Code: "T3", Qty: 1},
		{Code: "T1", Qty: 2},
		{Code: "T2", Qty: 3},
	}
	real := []inventory.RealRecord{
		{Code: "R2", Qty: 1},
		{Code: "T1", Qty: 9},
		{Code: "R1", Qty: 1},
	}

	got := Compute(theo, real)

	codes := make([]string, len(got))
	for i, inc := range got {
		codes[i] = inc.Code
	}
	assert.Equal(t, []string{"T3", "T1", "T2", "R2", "R1"}, codes)
}

func TestCompute_Empty(t *testing.T) {
	got := Compute(nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestCompute_Partition verifies the three incident sets are disjoint and cover
// every code that is not an exact match.
func TestCompute_Partition(t *testing.T) {
	theo := []inventory.InventoryItem{
		{Code: "same", Qty: 4},
		{Code: "less", Qty: 4},
		{Code: "gone", Qty: 4},
		{Code: "zero", Qty: 0},
	}
	real := []inventory.RealRecord{
		{Code: "same", Qty: 4},
		{Code: "less", Qty: 1},
		{Code: "extra", Qty: 1},
		{Code: "zero", Qty: 0},
	}

	got := Compute(theo, real)

	byCode := make(map[string]inventory.IncidentType)
	for _, inc := range got {
		_, dup := byCode[inc.Code]
		assert.False(t, dup, "code %s reported twice", inc.Code)
		byCode[inc.Code] = inc.Type
	}
	assert.Equal(t, map[string]inventory.IncidentType{
		"less":  inventory.IncidentMismatch,
		"gone":  inventory.IncidentMissing,
		"extra": inventory.IncidentUnexpected,
	}, byCode)
}

func TestRun_ReplacesIncidents(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := seededStore(
		[]inventory.InventoryItem{{Code: "A", Qty: 1}},
		nil,
		[]inventory.Incident{{Code: "ZZZ", Type: inventory.IncidentNotFound, Time: &now}},
	)

	report := Run(store, Options{})

	require.Len(t, report.Incidents, 1)
	assert.Equal(t, inventory.IncidentMissing, report.Incidents[0].Type)
	assert.Equal(t, report.Incidents, store.Incidents())
}

func TestRun_KeepNotFound(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := seededStore(
		[]inventory.InventoryItem{{Code: "A", Qty: 1}},
		[]inventory.RealRecord{{Code: "B", Qty: 1}},
		[]inventory.Incident{
			{ID: "1", Code: "ZZZ", Type: inventory.IncidentNotFound, Time: &now},
			{ID: "2", Code: "B", Type: inventory.IncidentNotFound, Time: &now},
			{Code: "old", Type: inventory.IncidentMissing},
		},
	)

	report := Run(store, Options{KeepNotFound: true})

	require.Len(t, report.Incidents, 3)
	assert.Equal(t, "A", report.Incidents[0].Code)
	assert.Equal(t, "B", report.Incidents[1].Code)
	assert.Equal(t, inventory.IncidentUnexpected, report.Incidents[1].Type)
	assert.Equal(t, "ZZZ", report.Incidents[2].Code, "only codes still unknown are carried")
	assert.Equal(t, 1, report.Summary.NotFound)
	assert.Equal(t, 3, report.Summary.Total)
}

func TestRun_Idempotent(t *testing.T) {
	store := seededStore(
		[]inventory.InventoryItem{{Code: "A", Qty: 5}, {Code: "B", Qty: 3}},
		[]inventory.RealRecord{{Code: "A", Qty: 4}, {Code: "C", Qty: 2}},
		nil,
	)

	first := Run(store, Options{})
	second := Run(store, Options{})

	assert.Equal(t, first, second)
}

func TestRun_DeletedRecordLeavesReport(t *testing.T) {
	store := seededStore(
		[]inventory.InventoryItem{{Code: "A", Qty: 5}},
		[]inventory.RealRecord{{Code: "A", Qty: 5}, {Code: "C", Qty: 2}},
		nil,
	)
	require.Len(t, Run(store, Options{}).Incidents, 1)

	require.True(t, store.DeleteReal("C"))

	assert.Empty(t, Run(store, Options{}).Incidents)
}

func TestSummarize(t *testing.T) {
	incidents := []inventory.Incident{
		{Type: inventory.IncidentMissing},
		{Type: inventory.IncidentMismatch},
		{Type: inventory.IncidentMismatch},
		{Type: inventory.IncidentUnexpected},
		{Type: inventory.IncidentNotFound},
	}

	s := Summarize(incidents, 10)

	assert.Equal(t, Summary{Total: 5, Missing: 1, Mismatch: 2, Unexpected: 1, NotFound: 1, Matched: 7}, s)
}

func TestConfig_Options(t *testing.T) {
	assert.Equal(t, Options{KeepNotFound: true}, Config{KeepNotFound: true}.Options())
}
