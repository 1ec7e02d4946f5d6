package inventory

import "time"

// InventoryItem is one line of the theoretical (expected) inventory.
type InventoryItem struct {
	// Code is the unique, trimmed SKU or barcode.
	Code string `json:"code" yaml:"code"`
	// Name is the display name of the item.
	Name string `json:"name" yaml:"name"`
	// Qty is the expected quantity.
	Qty int `json:"qty" yaml:"qty"`
}

// RealRecord is one physically counted line of the real inventory.
type RealRecord struct {
	// Code is the unique SKU or barcode.
	Code string `json:"code" yaml:"code"`
	// Name is the display name, copied from the theoretical item on first scan.
	Name string `json:"name" yaml:"name"`
	// Qty is the counted quantity.
	Qty int `json:"qty" yaml:"qty"`
	// FromTheoretical is true when the record was created by scanning a known item.
	FromTheoretical bool `json:"fromTheoretical,omitempty" yaml:"fromTheoretical,omitempty"`
}

// RecordUpdate holds the editable fields of a real record. Nil fields are left untouched.
type RecordUpdate struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Qty  *int    `json:"qty,omitempty" yaml:"qty,omitempty"`
}

// Apply returns a copy of rec with the update applied.
func (u RecordUpdate) Apply(rec RealRecord) RealRecord {
	if u.Name != nil {
		rec.Name = *u.Name
	}
	if u.Qty != nil {
		rec.Qty = *u.Qty
	}
	return rec
}

// Empty reports whether the update changes nothing.
func (u RecordUpdate) Empty() bool {
	return u.Name == nil && u.Qty == nil
}

// Action identifies the kind of mutation recorded in the audit log.
type Action string

const (
	ActionScanNotFound Action = "scan_not_found"
	ActionIncrement    Action = "increment"
	ActionAddFromScan  Action = "add_from_scan"
	ActionManualAdd    Action = "manual_add"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionClearReal    Action = "clear_real"
)

// AuditEntry is one immutable line of the audit log.
type AuditEntry struct {
	Action Action `json:"action" yaml:"action"`
	Code   string `json:"code,omitempty" yaml:"code,omitempty"`
	// Time is stamped by the store when the entry is appended.
	Time time.Time `json:"time" yaml:"time"`
	// Name is set for add_from_scan.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Updates is set for update.
	Updates *RecordUpdate `json:"updates,omitempty" yaml:"updates,omitempty"`
	// Rec is set for manual_add.
	Rec *RealRecord `json:"rec,omitempty" yaml:"rec,omitempty"`
}

// IncidentType classifies a discrepancy between the two inventories.
type IncidentType string

const (
	IncidentMissing    IncidentType = "missing"
	IncidentMismatch   IncidentType = "mismatch"
	IncidentUnexpected IncidentType = "unexpected"
	IncidentNotFound   IncidentType = "not_found"
)

// Incident is a single discrepancy. Expected and Actual are nil for live not_found
// incidents recorded while scanning.
type Incident struct {
	ID       string       `json:"id,omitempty" yaml:"id,omitempty"`
	Code     string       `json:"code" yaml:"code"`
	Name     string       `json:"name,omitempty" yaml:"name,omitempty"`
	Expected *int         `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual   *int         `json:"actual,omitempty" yaml:"actual,omitempty"`
	Type     IncidentType `json:"type" yaml:"type"`
	Time     *time.Time   `json:"time,omitempty" yaml:"time,omitempty"`
}

// Slot names one of the four persisted collections. The values double as snapshot keys.
type Slot string

const (
	SlotTheoretical Slot = "inv_theoretical"
	SlotReal        Slot = "inv_real"
	SlotHistory     Slot = "inv_history"
	SlotIncidents   Slot = "inv_incidents"
)

// Slots lists every persisted collection in load order.
var Slots = []Slot{SlotTheoretical, SlotReal, SlotHistory, SlotIncidents}

// State is a detached copy of every collection held by a Store.
type State struct {
	Theoretical []InventoryItem
	Real        []RealRecord
	History     []AuditEntry
	Incidents   []Incident
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
