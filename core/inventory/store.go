package inventory

import (
	"errors"
	"time"
)

var (
	// ErrDuplicateCode is returned when inserting a real record whose code already exists.
	ErrDuplicateCode = errors.New("a real record with this code already exists")
	// ErrNotConfirmed is returned when a destructive action was not confirmed by the user.
	ErrNotConfirmed = errors.New("destructive action not confirmed")
)

// MutationHook is called after every successful mutation with the collection that changed.
type MutationHook func(store *Store, slot Slot)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp audit entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithMutationHook registers the on-mutation callback.
func WithMutationHook(hook MutationHook) Option {
	return func(s *Store) {
		s.hook = hook
	}
}

// Store owns the theoretical items, the real records, the audit log and the last
// computed incident list. It is not safe for concurrent use; callers serialize events.
type Store struct {
	theoretical []InventoryItem
	real        []RealRecord
	history     []AuditEntry
	incidents   []Incident

	now  func() time.Time
	hook MutationHook
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		theoretical: []InventoryItem{},
		real:        []RealRecord{},
		history:     []AuditEntry{},
		incidents:   []Incident{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetMutationHook replaces the on-mutation callback.
func (s *Store) SetMutationHook(hook MutationHook) {
	s.hook = hook
}

// Restore replaces every collection with the given state without firing the hook.
func (s *Store) Restore(state State) {
	s.theoretical = dedupeTheoretical(state.Theoretical)
	s.real = append([]RealRecord{}, state.Real...)
	s.history = append([]AuditEntry{}, state.History...)
	s.incidents = append([]Incident{}, state.Incidents...)
}

// State returns a detached copy of every collection.
func (s *Store) State() State {
	return State{
		Theoretical: s.Theoretical(),
		Real:        s.Real(),
		History:     s.History(),
		Incidents:   s.Incidents(),
	}
}

// Theoretical returns a copy of the theoretical collection.
func (s *Store) Theoretical() []InventoryItem {
	return append([]InventoryItem{}, s.theoretical...)
}

// Real returns a copy of the real collection, newest first.
func (s *Store) Real() []RealRecord {
	return append([]RealRecord{}, s.real...)
}

// History returns a copy of the audit log, newest first.
func (s *Store) History() []AuditEntry {
	return append([]AuditEntry{}, s.history...)
}

// Incidents returns a copy of the incident list.
func (s *Store) Incidents() []Incident {
	return append([]Incident{}, s.incidents...)
}

// FindTheoretical looks up a theoretical item by code.
func (s *Store) FindTheoretical(code string) (InventoryItem, bool) {
	for _, item := range s.theoretical {
		if item.Code == code {
			return item, true
		}
	}
	return InventoryItem{}, false
}

// FindReal looks up a real record by code.
func (s *Store) FindReal(code string) (RealRecord, bool) {
	if i := s.realIndex(code); i >= 0 {
		return s.real[i], true
	}
	return RealRecord{}, false
}

// ReplaceTheoretical swaps the whole theoretical collection. Rows sharing a code are
// collapsed: the last row wins and keeps the position of the first one.
func (s *Store) ReplaceTheoretical(items []InventoryItem) {
	s.theoretical = dedupeTheoretical(items)
	s.changed(SlotTheoretical)
}

// UpsertReal applies mutator to the real record with the given code.
// It is a no-op returning false when no such record exists.
func (s *Store) UpsertReal(code string, mutator func(RealRecord) RealRecord) bool {
	i := s.realIndex(code)
	if i < 0 {
		return false
	}
	updated := mutator(s.real[i])
	updated.Code = code
	if updated.Qty < 0 {
		updated.Qty = 0
	}
	s.real[i] = updated
	s.changed(SlotReal)
	return true
}

// InsertReal prepends a new real record.
func (s *Store) InsertReal(rec RealRecord) error {
	if s.realIndex(rec.Code) >= 0 {
		return ErrDuplicateCode
	}
	if rec.Qty < 0 {
		rec.Qty = 0
	}
	s.real = append([]RealRecord{rec}, s.real...)
	s.changed(SlotReal)
	return nil
}

// DeleteReal removes the real record with the given code and reports whether it existed.
func (s *Store) DeleteReal(code string) bool {
	i := s.realIndex(code)
	if i < 0 {
		return false
	}
	s.real = append(s.real[:i:i], s.real[i+1:]...)
	s.changed(SlotReal)
	return true
}

// ClearReal empties the real collection and records a clear_real audit entry.
func (s *Store) ClearReal() AuditEntry {
	s.real = []RealRecord{}
	s.changed(SlotReal)
	return s.AppendAudit(AuditEntry{Action: ActionClearReal})
}

// AppendAudit stamps the entry with the store clock and prepends it to the log.
func (s *Store) AppendAudit(entry AuditEntry) AuditEntry {
	entry.Time = s.now().UTC()
	s.history = append([]AuditEntry{entry}, s.history...)
	s.changed(SlotHistory)
	return entry
}

// SetIncidents replaces the incident list.
func (s *Store) SetIncidents(incidents []Incident) {
	s.incidents = append([]Incident{}, incidents...)
	s.changed(SlotIncidents)
}

// PrependIncident adds a single live incident in front of the current list.
func (s *Store) PrependIncident(incident Incident) {
	s.SetIncidents(append([]Incident{incident}, s.incidents...))
}

// ClearIncidents empties the incident list.
func (s *Store) ClearIncidents() {
	s.SetIncidents(nil)
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now().UTC()
}

func (s *Store) realIndex(code string) int {
	for i, rec := range s.real {
		if rec.Code == code {
			return i
		}
	}
	return -1
}

func (s *Store) changed(slot Slot) {
	if s.hook != nil {
		s.hook(s, slot)
	}
}

func dedupeTheoretical(items []InventoryItem) []InventoryItem {
	out := make([]InventoryItem, 0, len(items))
	pos := make(map[string]int, len(items))
	for _, item := range items {
		if i, ok := pos[item.Code]; ok {
			out[i] = item
			continue
		}
		pos[item.Code] = len(out)
		out = append(out, item)
	}
	return out
}
