package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"inventory-control/core/inventory"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// memBackend is an in-memory Backend with injectable failures.
type memBackend struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  map[string]error
	putErr  error
	putKeys []string
}

func newMemBackend() *memBackend {
	return &memBackend{data: map[string][]byte{}, getErr: map[string]error{}}
}

func (m *memBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.getErr[key]; ok {
		return nil, err
	}
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (m *memBackend) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putKeys = append(m.putKeys, key)
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = data
	return nil
}

func sampleState() inventory.State {
	at := time.Date(2024, 3, 9, 8, 30, 0, 0, time.UTC)
	return inventory.State{
		Theoretical: []inventory.InventoryItem{{Code: "A", Name: "Tornillo", Qty: 5}},
		Real:        []inventory.RealRecord{{Code: "A", Name: "Tornillo", Qty: 2, FromTheoretical: true}},
		History:     []inventory.AuditEntry{{Action: inventory.ActionIncrement, Code: "A", Time: at}},
		Incidents: []inventory.Incident{
			{Code: "A", Name: "Tornillo", Expected: inventory.IntPtr(5), Actual: inventory.IntPtr(2), Type: inventory.IncidentMismatch},
		},
	}
}

func TestSnapshotter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	snap := New(NewFileBackend(afero.NewMemMapFs(), "/data"), zap.NewNop(), time.Second)

	require.NoError(t, snap.Save(ctx, sampleState()))

	state, err := snap.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleState(), state)
}

func TestSnapshotter_LoadEmptyBackend(t *testing.T) {
	state, err := New(newMemBackend(), nil, 0).Load(context.Background())

	require.NoError(t, err, "never written slots are not errors")
	assert.NotNil(t, state.Theoretical)
	assert.NotNil(t, state.Real)
	assert.NotNil(t, state.History)
	assert.NotNil(t, state.Incidents)
	assert.Empty(t, state.Real)
}

func TestSnapshotter_LoadIsolatesFailures(t *testing.T) {
	ctx := context.Background()
	backend := newMemBackend()
	snap := New(backend, nil, 0)
	require.NoError(t, snap.Save(ctx, sampleState()))

	backend.data[string(inventory.SlotReal)] = []byte("{not json")
	backend.getErr[string(inventory.SlotHistory)] = errors.New("disk error")

	state, err := snap.Load(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "slot inv_real")
	assert.Contains(t, err.Error(), "slot inv_history")
	assert.Contains(t, err.Error(), "disk error")

	assert.Empty(t, state.Real)
	assert.Empty(t, state.History)
	assert.Equal(t, sampleState().Theoretical, state.Theoretical)
	assert.Equal(t, sampleState().Incidents, state.Incidents)
}

func TestSnapshotter_LoadNullPayload(t *testing.T) {
	backend := newMemBackend()
	backend.data[string(inventory.SlotIncidents)] = []byte("null")

	state, err := New(backend, nil, 0).Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, state.Incidents)
	assert.Empty(t, state.Incidents)
}

func TestSnapshotter_LoadNumericNames(t *testing.T) {
	backend := newMemBackend()
	backend.data[string(inventory.SlotTheoretical)] = []byte(`[{"code":"750","name":2024,"qty":3}]`)
	backend.data[string(inventory.SlotReal)] = []byte(`[{"code":"750","name":2024,"qty":1,"fromTheoretical":true}]`)

	state, err := New(backend, zap.NewNop(), time.Second).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []inventory.InventoryItem{{Code: "750", Name: "2024", Qty: 3}}, state.Theoretical)
	assert.Equal(t, []inventory.RealRecord{{Code: "750", Name: "2024", Qty: 1, FromTheoretical: true}}, state.Real)
}

func TestSnapshotter_SaveSelectedSlots(t *testing.T) {
	backend := newMemBackend()
	snap := New(backend, nil, 0)

	require.NoError(t, snap.Save(context.Background(), inventory.State{}, inventory.SlotReal))

	assert.Equal(t, []string{"inv_real"}, backend.putKeys)
	assert.Equal(t, "[]", string(backend.data["inv_real"]), "nil collections are stored as empty arrays")
}

func TestSnapshotter_SaveJoinsFailures(t *testing.T) {
	backend := newMemBackend()
	backend.putErr = errors.New("full")

	err := New(backend, nil, 0).Save(context.Background(), sampleState())

	require.Error(t, err)
	assert.Len(t, backend.putKeys, 4, "every slot is attempted")
	for _, slot := range inventory.Slots {
		assert.Contains(t, err.Error(), string(slot))
	}
}

func TestSnapshotter_Hook(t *testing.T) {
	backend := newMemBackend()
	snap := New(backend, nil, 0)
	store := inventory.NewStore(inventory.WithMutationHook(snap.Hook()))

	require.NoError(t, store.InsertReal(inventory.RealRecord{Code: "X", Qty: 3}))

	assert.Equal(t, []string{"inv_real"}, backend.putKeys)
	assert.JSONEq(t, `[{"code":"X","name":"","qty":3}]`, string(backend.data["inv_real"]))
}

func TestSnapshotter_HookLogsFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	backend := newMemBackend()
	backend.putErr = errors.New("offline")
	snap := New(backend, zap.New(core), 0)
	store := inventory.NewStore(inventory.WithMutationHook(snap.Hook()))

	store.ReplaceTheoretical([]inventory.InventoryItem{{Code: "A", Qty: 1}})

	_, found := store.FindTheoretical("A")
	assert.True(t, found, "mutation survives a failed write")
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Failed to persist snapshot", entry.Message)
	assert.Equal(t, "inv_theoretical", entry.ContextMap()["slot"])
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 10*time.Second, Config{TimeoutSeconds: 10}.Timeout())
}
