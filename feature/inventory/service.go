package inventory

import (
	"fmt"
	"io"
	"sync"

	inv "inventory-control/core/inventory"
	"inventory-control/core/reconcile"
	"inventory-control/core/report"
	"inventory-control/core/scan"
	"inventory-control/core/sheet"

	"go.uber.org/zap"
)

// Service is the single entry point for every inventory event. One mutex
// serializes events in arrival order; exports render from copies taken under it.
type Service struct {
	mu        sync.Mutex
	store     *inv.Store
	processor *scan.Processor
	keys      *scan.KeyBuffer
	board     *scan.Board
	notifier  scan.Notifier
	reconcile reconcile.Options
	metrics   *Metrics
	logger    *zap.Logger
}

// NewService wires a service around store. metrics may be nil.
func NewService(store *inv.Store, scanCfg scan.Config, reconcileCfg reconcile.Config, metrics *Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	board := scan.NewBoard(scanCfg.NotificationTTL())
	notifier := scan.Multi{board, scan.LogNotifier{Logger: logger}}

	s := &Service{
		store:     store,
		processor: scan.NewProcessor(store, notifier, logger),
		keys:      scan.NewKeyBuffer(scanCfg.KeyTimeout(), scanCfg.MaxLength),
		board:     board,
		notifier:  notifier,
		reconcile: reconcileCfg.Options(),
		metrics:   metrics,
		logger:    logger,
	}
	s.metrics.Observe(store)
	return s
}

// KeyResult is the outcome of feeding one keystroke.
type KeyResult struct {
	// Pending is the buffer content after the key.
	Pending string `json:"pending"`
	// Scan is set when the key completed a code.
	Scan *scan.Result `json:"scan,omitempty"`
}

// Scan processes one complete code.
func (s *Service) Scan(raw string) (scan.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanLocked(raw)
}

func (s *Service) scanLocked(raw string) (scan.Result, error) {
	res, err := s.processor.Process(raw)
	if err != nil {
		return scan.Result{}, err
	}
	s.metrics.ObserveScan(res.Outcome)
	s.metrics.Observe(s.store)
	return res, nil
}

// Key feeds one keystroke to the scanner buffer and processes the code it completes.
// An Enter on an empty buffer is ignored.
func (s *Service) Key(key string) (KeyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	overflowed := s.keys.Overflowed()
	code, ok := s.keys.Feed(key)
	if !ok {
		if overflowed && !s.keys.Overflowed() {
			s.logger.Warn("Over-long scan discarded")
		}
		return KeyResult{Pending: s.keys.Pending()}, nil
	}
	res, err := s.scanLocked(code)
	if err != nil {
		return KeyResult{}, err
	}
	return KeyResult{Scan: &res}, nil
}

// ImportTheoretical replaces the theoretical inventory with the rows of an xlsx
// workbook and returns how many items were loaded. A workbook that cannot be
// parsed leaves the current inventory untouched.
func (s *Service) ImportTheoretical(r io.Reader) (int, error) {
	items, err := sheet.Import(r)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.ReplaceTheoretical(items)
	s.notify(scan.LevelSuccess, "Inventario teórico cargado")
	s.metrics.Observe(s.store)
	return len(s.store.Theoretical()), nil
}

// ExportTheoretical writes the theoretical inventory as an xlsx workbook.
func (s *Service) ExportTheoretical(w io.Writer) error {
	return sheet.Export(w, s.Theoretical())
}

// AddRecord inserts a manually counted record.
func (s *Service) AddRecord(rec inv.RealRecord) (inv.RealRecord, error) {
	code, ok := scan.Normalize(rec.Code)
	if !ok {
		return inv.RealRecord{}, scan.ErrEmptyCode
	}
	rec.Code = code
	if rec.Qty < 0 {
		rec.Qty = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.InsertReal(rec); err != nil {
		return inv.RealRecord{}, fmt.Errorf("failed to add %s: %w", code, err)
	}
	s.store.AppendAudit(inv.AuditEntry{Action: inv.ActionManualAdd, Rec: &rec})
	s.metrics.Observe(s.store)
	return rec, nil
}

// UpdateRecord applies a partial update to a real record. It reports false, and
// records nothing, when the code is not counted.
func (s *Service) UpdateRecord(code string, upd inv.RecordUpdate) (inv.RealRecord, bool) {
	upd = detachUpdate(upd)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.UpsertReal(code, upd.Apply) {
		return inv.RealRecord{}, false
	}
	s.store.AppendAudit(inv.AuditEntry{Action: inv.ActionUpdate, Code: code, Updates: &upd})
	rec, _ := s.store.FindReal(code)
	return rec, true
}

// detachUpdate copies the caller's values so the audit entry owns them, with the
// quantity clamped the way the store applies it.
func detachUpdate(upd inv.RecordUpdate) inv.RecordUpdate {
	var out inv.RecordUpdate
	if upd.Name != nil {
		name := *upd.Name
		out.Name = &name
	}
	if upd.Qty != nil {
		out.Qty = inv.IntPtr(max(*upd.Qty, 0))
	}
	return out
}

// DeleteRecord removes a real record. Without confirmation it returns
// inv.ErrNotConfirmed and changes nothing. Deleting an absent code reports false
// and records nothing.
func (s *Service) DeleteRecord(code string, confirmed bool) (bool, error) {
	if !confirmed {
		return false, inv.ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.DeleteReal(code) {
		return false, nil
	}
	s.store.AppendAudit(inv.AuditEntry{Action: inv.ActionDelete, Code: code})
	s.metrics.Observe(s.store)
	return true, nil
}

// ClearReal empties the real inventory. Without confirmation it returns
// inv.ErrNotConfirmed and changes nothing.
func (s *Service) ClearReal(confirmed bool) error {
	if !confirmed {
		return inv.ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.ClearReal()
	s.metrics.Observe(s.store)
	return nil
}

// Reconcile recomputes the incident list with the configured options.
func (s *Service) Reconcile() reconcile.Report {
	return s.ReconcileWith(s.reconcile)
}

// ReconcileWith recomputes the incident list with explicit options.
func (s *Service) ReconcileWith(opts reconcile.Options) reconcile.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	rep := reconcile.Run(s.store, opts)
	s.notify(scan.LevelInfo, "Incidentes calculados")
	s.metrics.Observe(s.store)
	s.logger.Info("Reconciliation finished",
		zap.Int("total", rep.Summary.Total),
		zap.Int("missing", rep.Summary.Missing),
		zap.Int("mismatch", rep.Summary.Mismatch),
		zap.Int("unexpected", rep.Summary.Unexpected),
		zap.Int("not_found", rep.Summary.NotFound),
		zap.Int("matched", rep.Summary.Matched),
	)
	return rep
}

// ClearIncidents empties the incident list.
func (s *Service) ClearIncidents() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.ClearIncidents()
	s.notify(scan.LevelInfo, "Incidentes borrados")
	s.metrics.Observe(s.store)
}

// WriteIncidentsPDF renders the current incident list.
func (s *Service) WriteIncidentsPDF(w io.Writer) error {
	return report.WriteIncidentsPDF(w, s.Incidents())
}

// WriteHistory exports the audit log.
func (s *Service) WriteHistory(w io.Writer, format report.Format) error {
	return report.WriteHistory(w, s.History(), format)
}

// Notification returns the notification still on display, if any.
func (s *Service) Notification() (scan.Notification, bool) {
	return s.board.Current()
}

// Theoretical returns a copy of the theoretical inventory.
func (s *Service) Theoretical() []inv.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Theoretical()
}

// Real returns a copy of the real inventory, newest first.
func (s *Service) Real() []inv.RealRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Real()
}

// History returns a copy of the audit log, newest first.
func (s *Service) History() []inv.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.History()
}

// Incidents returns a copy of the incident list.
func (s *Service) Incidents() []inv.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Incidents()
}

func (s *Service) notify(level scan.Level, msg string) {
	s.notifier.Notify(scan.Notification{Level: level, Message: msg})
}
