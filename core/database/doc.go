// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either a MySQL server or a local SQLite file, based on
// Config.Driver. The connection is silent (GORM logging disabled) and is verified
// with a ping bounded by Config.TimeoutSeconds.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table layout (SHOW COLUMNS on
// MySQL, PRAGMA table_info on SQLite). The database snapshot backend uses them to
// verify its table after migrating.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
package database
