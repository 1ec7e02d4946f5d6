package reconcile

import "inventory-control/core/inventory"

// Options controls how a reconciliation run treats the existing incident list.
type Options struct {
	// KeepNotFound carries live not_found incidents over into the new list instead of
	// discarding them. They are appended after the computed incidents.
	KeepNotFound bool
}

// Config holds configuration for reconciliation runs.
type Config struct {
	// KeepNotFound is the default for Options.KeepNotFound.
	KeepNotFound bool `mapstructure:"keep_not_found" default:"false"`
}

// Options converts the configuration into run options.
func (c Config) Options() Options {
	return Options{KeepNotFound: c.KeepNotFound}
}

// Report is the outcome of a reconciliation run.
type Report struct {
	// Incidents is the new incident list, in contract order.
	Incidents []inventory.Incident `json:"incidents"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a reconciliation run.
type Summary struct {
	// Total is the number of incidents.
	Total int `json:"total"`

	// Missing counts theoretical items never counted.
	Missing int `json:"missing"`

	// Mismatch counts items counted with a different quantity.
	Mismatch int `json:"mismatch"`

	// Unexpected counts counted items absent from the theoretical inventory.
	Unexpected int `json:"unexpected"`

	// NotFound counts carried over not_found scans.
	NotFound int `json:"not_found"`

	// Matched counts theoretical items whose counted quantity is exact.
	Matched int `json:"matched"`
}
