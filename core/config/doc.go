// Package config provides configuration management for the inventory service.
//
// Values come from the process environment, optionally seeded from a .env file in
// the given directory. Every key has a default declared with a `default:"..."`
// struct tag next to its `mapstructure` name; nested keys map to environment
// variables by replacing dots with underscores (snapshot.backend is
// SNAPSHOT_BACKEND).
//
// After loading, `validate:"..."` tags are checked with go-playground/validator and
// every violation is reported by its configuration key.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, body limit
//   - Log: level, format and output sink
//   - Snapshot: persistence backend (file, database, object), directory, prefix
//   - Database: MySQL or SQLite connection for the database backend
//   - Storage: S3/MinIO credentials and bucket for the object backend
//   - Scan: keystroke buffer timeout and cap, notification lifetime
//   - Reconcile: whether not_found incidents survive a reconciliation
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Snapshot.Backend)
package config
