// Package snapshot persists the inventory session between runs.
//
// Each of the four collections (theoretical items, real records, audit log and
// incident list) is serialized independently as a JSON array under its own key,
// named after inventory.Slot ("inv_theoretical", "inv_real", "inv_history",
// "inv_incidents"). Reading one slot never depends on another.
//
// # Backends
//
//   - FileBackend: one "<key>.json" file per slot in a directory (afero filesystem).
//   - GormBackend: one row per slot in the inventory_snapshots table (MySQL or SQLite).
//   - ObjectBackend: one "<prefix>/<key>.json" object per slot in a MinIO/S3 bucket.
//
// # Loading and saving
//
// Load reads the four slots concurrently. A slot that was never written starts
// empty. A corrupt slot also starts empty and is reported in the returned error,
// which callers log and otherwise ignore.
//
// Hook returns an inventory.MutationHook that writes only the slot that changed.
// Persistence is best effort: failures are logged with zap and never undo the
// in-memory mutation.
//
// # Usage
//
//	snap := snapshot.New(snapshot.NewFileBackend(afero.NewOsFs(), "./data"), log, 10*time.Second)
//	state, err := snap.Load(ctx)
//	if err != nil {
//	    log.Warn("Snapshot partially restored", zap.Error(err))
//	}
//	store := inventory.NewStore(inventory.WithMutationHook(snap.Hook()))
//	store.Restore(state)
package snapshot
