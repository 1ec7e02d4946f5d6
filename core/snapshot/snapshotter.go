package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"inventory-control/core/inventory"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Snapshotter persists the four inventory collections to a Backend, one key per slot.
type Snapshotter struct {
	backend Backend
	logger  *zap.Logger
	timeout time.Duration
}

// New creates a Snapshotter. A zero timeout leaves backend calls bounded only by the
// caller's context.
func New(backend Backend, logger *zap.Logger, timeout time.Duration) *Snapshotter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Snapshotter{backend: backend, logger: logger, timeout: timeout}
}

// Load reads every slot concurrently. Slots never written default to empty
// collections. A slot that cannot be read or decoded also defaults to empty and its
// error is joined into the returned error; the other slots are still loaded.
func (s *Snapshotter) Load(ctx context.Context) (inventory.State, error) {
	state := inventory.State{
		Theoretical: []inventory.InventoryItem{},
		Real:        []inventory.RealRecord{},
		History:     []inventory.AuditEntry{},
		Incidents:   []inventory.Incident{},
	}
	errs := make([]error, len(inventory.Slots))

	var g errgroup.Group
	for i, slot := range inventory.Slots {
		g.Go(func() error {
			errs[i] = s.loadSlot(ctx, slot, &state)
			return nil
		})
	}
	_ = g.Wait()

	return state, errors.Join(errs...)
}

func (s *Snapshotter) loadSlot(ctx context.Context, slot inventory.Slot, state *inventory.State) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, err := s.backend.Get(ctx, string(slot))
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("slot %s: %w", slot, err)
	}

	// Each slot decodes into its own field of state.
	switch slot {
	case inventory.SlotTheoretical:
		err = decode(data, &state.Theoretical)
	case inventory.SlotReal:
		err = decode(data, &state.Real)
	case inventory.SlotHistory:
		err = decode(data, &state.History)
	case inventory.SlotIncidents:
		err = decode(data, &state.Incidents)
	default:
		err = fmt.Errorf("unknown slot")
	}
	if err != nil {
		return fmt.Errorf("slot %s: %w", slot, err)
	}
	return nil
}

// decode unmarshals into a fresh slice and only assigns it on success, so a corrupt
// payload leaves the empty default in place. A JSON null decodes as empty.
func decode[T any](data []byte, dst *[]T) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("corrupt snapshot: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	*dst = items
	return nil
}

// Save writes the given slots of state, or every slot when none is named.
// All slots are attempted; failures are joined.
func (s *Snapshotter) Save(ctx context.Context, state inventory.State, slots ...inventory.Slot) error {
	if len(slots) == 0 {
		slots = inventory.Slots
	}
	var errs []error
	for _, slot := range slots {
		if err := s.saveSlot(ctx, slot, state); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Snapshotter) saveSlot(ctx context.Context, slot inventory.Slot, state inventory.State) error {
	var payload any
	switch slot {
	case inventory.SlotTheoretical:
		payload = nonNil(state.Theoretical)
	case inventory.SlotReal:
		payload = nonNil(state.Real)
	case inventory.SlotHistory:
		payload = nonNil(state.History)
	case inventory.SlotIncidents:
		payload = nonNil(state.Incidents)
	default:
		return fmt.Errorf("slot %s: unknown slot", slot)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("slot %s: %w", slot, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.backend.Put(ctx, string(slot), data); err != nil {
		return fmt.Errorf("slot %s: %w", slot, err)
	}
	return nil
}

// Hook returns a store mutation hook that writes the changed slot. Failures are
// logged and never propagate: the in-memory mutation has already happened.
func (s *Snapshotter) Hook() inventory.MutationHook {
	return func(store *inventory.Store, slot inventory.Slot) {
		if err := s.Save(context.Background(), slotState(store, slot), slot); err != nil {
			s.logger.Warn("Failed to persist snapshot",
				zap.String("slot", string(slot)),
				zap.Error(err),
			)
		}
	}
}

func slotState(store *inventory.Store, slot inventory.Slot) inventory.State {
	var state inventory.State
	switch slot {
	case inventory.SlotTheoretical:
		state.Theoretical = store.Theoretical()
	case inventory.SlotReal:
		state.Real = store.Real()
	case inventory.SlotHistory:
		state.History = store.History()
	case inventory.SlotIncidents:
		state.Incidents = store.Incidents()
	}
	return state
}

func (s *Snapshotter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
