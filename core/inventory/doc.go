// Package inventory holds the record store of the inventory count.
//
// A Store owns four collections:
//   - the theoretical inventory (expected stock, replaced wholesale on import)
//   - the real inventory (counted stock, built by scanning or manual entry)
//   - the audit log (append-only, newest first)
//   - the incident list (last reconciliation result plus live not-found scans)
//
// Every mutation primitive fires the optional MutationHook with the Slot that
// changed, which is how snapshots are kept in sync without coupling the store to a
// storage backend.
//
// # Usage
//
//	store := inventory.NewStore(inventory.WithMutationHook(snap.Hook(ctx)))
//	store.ReplaceTheoretical(items)
//	store.InsertReal(inventory.RealRecord{Code: "A", Qty: 1})
package inventory
