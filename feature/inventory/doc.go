// Package inventory exposes the inventory session to the CLI and over HTTP.
//
// Service is the only writer of the session store. Every event (scan, keystroke,
// import, manual edit, reconciliation) takes the same mutex, so events apply
// strictly in arrival order even though fiber serves requests concurrently.
// Snapshot writes run inside the store's mutation hook, under that mutex, after
// the in-memory change.
//
// # Destructive actions
//
// DeleteRecord and ClearReal take an explicit confirmation flag. Without it they
// return inventory.ErrNotConfirmed and leave the store and the audit log as they
// were. Over HTTP the flag is the confirm=true query parameter.
//
// # Routes
//
//	POST   /inventory/theoretical          multipart "file" (xlsx)
//	GET    /inventory/theoretical
//	GET    /inventory/theoretical/export
//	POST   /inventory/scan                 {"code": "..."}
//	POST   /inventory/keys                 {"key": "7"} or {"key": "Enter"}
//	GET    /inventory/records
//	POST   /inventory/records
//	PATCH  /inventory/records/:code
//	DELETE /inventory/records/:code?confirm=true
//	DELETE /inventory/records?confirm=true
//	POST   /inventory/reconcile[?keep_not_found=true]
//	GET    /inventory/incidents
//	DELETE /inventory/incidents
//	GET    /inventory/incidents/report     PDF
//	GET    /inventory/history
//	GET    /inventory/history/export?format=json|yaml
//	GET    /inventory/notification
//
// Request bodies are validated with go-playground/validator; failures return 422
// with the offending fields. Domain errors map to 400 (empty code, missing
// confirmation) and 409 (code already counted).
package inventory
