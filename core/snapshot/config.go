package snapshot

import "time"

// Backend names accepted by Config.Backend.
const (
	BackendFile     = "file"
	BackendDatabase = "database"
	BackendObject   = "object"
)

// Config holds configuration for session persistence.
type Config struct {
	// Backend selects where snapshots live: file, database or object.
	Backend string `mapstructure:"backend" default:"file" validate:"oneof=file database object"`
	// Dir is the directory used by the file backend.
	Dir string `mapstructure:"dir" default:"./data"`
	// Prefix is the object name prefix used by the object backend.
	Prefix string `mapstructure:"prefix" default:"snapshots"`
	// TimeoutSeconds bounds each slot read or write.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10" validate:"gte=0"`
}

// Timeout returns TimeoutSeconds as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
