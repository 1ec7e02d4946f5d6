package scan

import (
	"testing"
	"time"

	"inventory-control/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(n Notification) {
	m.Called(n)
}

func newStore() *inventory.Store {
	clock := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)
	return inventory.NewStore(inventory.WithClock(func() time.Time { return clock }))
}

func TestProcess_NotFound(t *testing.T) {
	store := newStore()
	store.ReplaceTheoretical([]inventory.InventoryItem{{Code: "A", Qty: 1}})
	require.NoError(t, store.InsertReal(inventory.RealRecord{Code: "B", Qty: 1}))

	notifier := new(mockNotifier)
	notifier.On("Notify", mock.MatchedBy(func(n Notification) bool {
		return n.Level == LevelError
	})).Once()

	p := NewProcessor(store, notifier, zap.NewNop())
	p.newID = func() string { return "incident-1" }

	res, err := p.Process("ZZZ")
	require.NoError(t, err)

	assert.Equal(t, OutcomeNotFound, res.Outcome)
	assert.Len(t, store.Theoretical(), 1)
	assert.Len(t, store.Real(), 1)

	incidents := store.Incidents()
	require.Len(t, incidents, 1)
	assert.Equal(t, "incident-1", incidents[0].ID)
	assert.Equal(t, "ZZZ", incidents[0].Code)
	assert.Equal(t, inventory.IncidentNotFound, incidents[0].Type)
	assert.Nil(t, incidents[0].Expected)
	assert.Nil(t, incidents[0].Actual)

	history := store.History()
	require.Len(t, history, 1)
	assert.Equal(t, inventory.ActionScanNotFound, history[0].Action)
	assert.Equal(t, "ZZZ", history[0].Code)

	notifier.AssertExpectations(t)
}

func TestProcess_Increment(t *testing.T) {
	store := newStore()
	require.NoError(t, store.InsertReal(inventory.RealRecord{Code: "A", Name: "Widget", Qty: 4}))

	p := NewProcessor(store, nil, nil)
	res, err := p.Process("A")
	require.NoError(t, err)

	assert.Equal(t, OutcomeIncremented, res.Outcome)
	assert.Equal(t, LevelSuccess, res.Notification.Level)
	require.NotNil(t, res.Record)
	assert.Equal(t, 5, res.Record.Qty)

	rec, _ := store.FindReal("A")
	assert.Equal(t, 5, rec.Qty)
	assert.Len(t, store.Real(), 1)

	history := store.History()
	require.Len(t, history, 1)
	assert.Equal(t, inventory.ActionIncrement, history[0].Action)
}

func TestProcess_IncrementWinsOverTheoretical(t *testing.T) {
	store := newStore()
	store.ReplaceTheoretical([]inventory.InventoryItem{{Code: "A", Name: "Widget", Qty: 10}})
	require.NoError(t, store.InsertReal(inventory.RealRecord{Code: "A", Name: "Manual", Qty: 2}))

	res, err := NewProcessor(store, nil, nil).Process("A")
	require.NoError(t, err)

	assert.Equal(t, OutcomeIncremented, res.Outcome)
	rec, _ := store.FindReal("A")
	assert.Equal(t, 3, rec.Qty)
	assert.Equal(t, "Manual", rec.Name)
}

func TestProcess_AddFromTheoreticalThenIncrement(t *testing.T) {
	store := newStore()
	store.ReplaceTheoretical([]inventory.InventoryItem{{Code: "A", Name: "Widget", Qty: 10}})
	p := NewProcessor(store, nil, nil)

	res, err := p.Process("A")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, res.Outcome)

	real := store.Real()
	require.Len(t, real, 1)
	assert.Equal(t, inventory.RealRecord{Code: "A", Name: "Widget", Qty: 1, FromTheoretical: true}, real[0])

	history := store.History()
	require.Len(t, history, 1)
	assert.Equal(t, inventory.ActionAddFromScan, history[0].Action)
	assert.Equal(t, "Widget", history[0].Name)

	res, err = p.Process("A")
	require.NoError(t, err)
	assert.Equal(t, OutcomeIncremented, res.Outcome)

	rec, _ := store.FindReal("A")
	assert.Equal(t, 2, rec.Qty)
	assert.Len(t, store.Real(), 1)
	assert.Len(t, store.History(), 2)
}

func TestProcess_RapidDuplicateScans(t *testing.T) {
	store := newStore()
	store.ReplaceTheoretical([]inventory.InventoryItem{{Code: "A", Qty: 3}})
	p := NewProcessor(store, nil, nil)

	for i := 0; i < 5; i++ {
		_, err := p.Process("A")
		require.NoError(t, err)
	}

	rec, _ := store.FindReal("A")
	assert.Equal(t, 5, rec.Qty)
}

func TestProcess_EmptyInput(t *testing.T) {
	store := newStore()
	p := NewProcessor(store, nil, nil)

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := p.Process(input)
		assert.ErrorIs(t, err, ErrEmptyCode)
	}
	assert.Empty(t, store.History())
	assert.Empty(t, store.Incidents())
}

func TestProcess_TrimsInput(t *testing.T) {
	store := newStore()
	require.NoError(t, store.InsertReal(inventory.RealRecord{Code: "A", Qty: 1}))

	res, err := NewProcessor(store, nil, nil).Process("  A \n")
	require.NoError(t, err)
	assert.Equal(t, "A", res.Code)
	assert.Equal(t, OutcomeIncremented, res.Outcome)
}

func TestNormalize(t *testing.T) {
	code, ok := Normalize("  123 ")
	assert.True(t, ok)
	assert.Equal(t, "123", code)

	_, ok = Normalize("   ")
	assert.False(t, ok)
}
