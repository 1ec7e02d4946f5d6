package scan

import (
	"errors"
	"fmt"
	"strings"

	"inventory-control/core/inventory"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyCode is returned when an empty or whitespace-only code reaches the processor.
var ErrEmptyCode = errors.New("scanned code is empty")

// Outcome is the classification of a single scan.
type Outcome string

const (
	// OutcomeNotFound means the code is unknown to both inventories.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeIncremented means an existing real record was incremented.
	OutcomeIncremented Outcome = "incremented"
	// OutcomeAdded means a theoretical item was counted for the first time.
	OutcomeAdded Outcome = "added"
)

// Result describes what a scan did to the store.
type Result struct {
	Code         string                `json:"code"`
	Outcome      Outcome               `json:"outcome"`
	Record       *inventory.RealRecord `json:"record,omitempty"`
	Incident     *inventory.Incident   `json:"incident,omitempty"`
	Audit        inventory.AuditEntry  `json:"audit"`
	Notification Notification          `json:"notification"`
}

// Normalize trims raw input and reports whether anything is left to process.
// Every entry point runs input through it before calling Process.
func Normalize(raw string) (string, bool) {
	code := strings.TrimSpace(raw)
	return code, code != ""
}

// Processor classifies scanned codes against a store and applies the resulting mutation.
type Processor struct {
	store    *inventory.Store
	notifier Notifier
	logger   *zap.Logger
	newID    func() string
}

// NewProcessor creates a processor. A nil notifier discards notifications.
func NewProcessor(store *inventory.Store, notifier Notifier, logger *zap.Logger) *Processor {
	if notifier == nil {
		notifier = discard{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		store:    store,
		notifier: notifier,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Process handles one scanned code. Classification is evaluated in order and the
// first match wins:
//  1. unknown to both inventories: a live not_found incident is recorded
//  2. already counted: the real record is incremented by one
//  3. known theoretical item: a real record with qty 1 is created
func (p *Processor) Process(code string) (Result, error) {
	code, ok := Normalize(code)
	if !ok {
		return Result{}, ErrEmptyCode
	}

	theo, inTheoretical := p.store.FindTheoretical(code)
	_, inReal := p.store.FindReal(code)

	var res Result
	switch {
	case !inTheoretical && !inReal:
		res = p.notFound(code)
	case inReal:
		res = p.increment(code)
	default:
		var err error
		res, err = p.addFromTheoretical(code, theo)
		if err != nil {
			return Result{}, err
		}
	}

	p.notifier.Notify(res.Notification)
	p.logger.Debug("Scan processed",
		zap.String("code", code),
		zap.String("outcome", string(res.Outcome)),
	)
	return res, nil
}

func (p *Processor) notFound(code string) Result {
	now := p.store.Now()
	incident := inventory.Incident{
		ID:   p.newID(),
		Code: code,
		Type: inventory.IncidentNotFound,
		Time: &now,
	}
	p.store.PrependIncident(incident)
	entry := p.store.AppendAudit(inventory.AuditEntry{Action: inventory.ActionScanNotFound, Code: code})

	return Result{
		Code:     code,
		Outcome:  OutcomeNotFound,
		Incident: &incident,
		Audit:    entry,
		Notification: Notification{
			Level:   LevelError,
			Message: fmt.Sprintf("Código %s no encontrado, incidente registrado", code),
		},
	}
}

func (p *Processor) increment(code string) Result {
	var updated inventory.RealRecord
	p.store.UpsertReal(code, func(r inventory.RealRecord) inventory.RealRecord {
		if r.Qty < 0 {
			r.Qty = 0
		}
		r.Qty++
		updated = r
		return r
	})
	entry := p.store.AppendAudit(inventory.AuditEntry{Action: inventory.ActionIncrement, Code: code})

	return Result{
		Code:    code,
		Outcome: OutcomeIncremented,
		Record:  &updated,
		Audit:   entry,
		Notification: Notification{
			Level:   LevelSuccess,
			Message: fmt.Sprintf("Registro actualizado: %s", code),
		},
	}
}

func (p *Processor) addFromTheoretical(code string, theo inventory.InventoryItem) (Result, error) {
	rec := inventory.RealRecord{
		Code:            code,
		Name:            theo.Name,
		Qty:             1,
		FromTheoretical: true,
	}
	if err := p.store.InsertReal(rec); err != nil {
		return Result{}, fmt.Errorf("failed to add %s to real inventory: %w", code, err)
	}
	entry := p.store.AppendAudit(inventory.AuditEntry{
		Action: inventory.ActionAddFromScan,
		Code:   code,
		Name:   rec.Name,
	})

	return Result{
		Code:    code,
		Outcome: OutcomeAdded,
		Record:  &rec,
		Audit:   entry,
		Notification: Notification{
			Level:   LevelSuccess,
			Message: fmt.Sprintf("Artículo agregado al inventario real: %s", code),
		},
	}, nil
}
