package reconcile

import (
	"inventory-control/core/inventory"
)

// Compute compares the theoretical and real inventories and returns every discrepancy.
//
// Output order is part of the contract: incidents derived from the theoretical
// collection come first, in theoretical order (missing, mismatch), followed by
// unexpected incidents in real collection order.
func Compute(theoretical []inventory.InventoryItem, real []inventory.RealRecord) []inventory.Incident {
	realIndex := make(map[string]inventory.RealRecord, len(real))
	for _, r := range real {
		realIndex[r.Code] = r
	}
	theoIndex := make(map[string]struct{}, len(theoretical))
	for _, t := range theoretical {
		theoIndex[t.Code] = struct{}{}
	}

	results := make([]inventory.Incident, 0)

	for _, t := range theoretical {
		r, ok := realIndex[t.Code]
		if !ok {
			results = append(results, inventory.Incident{
				Code:     t.Code,
				Name:     t.Name,
				Expected: inventory.IntPtr(t.Qty),
				Actual:   inventory.IntPtr(0),
				Type:     inventory.IncidentMissing,
			})
			continue
		}
		if r.Qty != t.Qty {
			results = append(results, inventory.Incident{
				Code:     t.Code,
				Name:     t.Name,
				Expected: inventory.IntPtr(t.Qty),
				Actual:   inventory.IntPtr(r.Qty),
				Type:     inventory.IncidentMismatch,
			})
		}
	}

	for _, r := range real {
		if _, ok := theoIndex[r.Code]; ok {
			continue
		}
		results = append(results, inventory.Incident{
			Code:     r.Code,
			Name:     r.Name,
			Expected: inventory.IntPtr(0),
			Actual:   inventory.IntPtr(r.Qty),
			Type:     inventory.IncidentUnexpected,
		})
	}

	return results
}

// Run reconciles the store, replaces its incident list and returns the report.
func Run(store *inventory.Store, opts Options) Report {
	theoretical := store.Theoretical()
	real := store.Real()

	incidents := Compute(theoretical, real)
	if opts.KeepNotFound {
		incidents = append(incidents, carriedNotFound(store, store.Incidents())...)
	}

	store.SetIncidents(incidents)

	return Report{
		Incidents: incidents,
		Summary:   Summarize(incidents, len(theoretical)),
	}
}

// Summarize counts incidents per type. Matched is the number of theoretical items
// that produced no incident.
func Summarize(incidents []inventory.Incident, theoreticalCount int) Summary {
	s := Summary{Total: len(incidents)}
	for _, inc := range incidents {
		switch inc.Type {
		case inventory.IncidentMissing:
			s.Missing++
		case inventory.IncidentMismatch:
			s.Mismatch++
		case inventory.IncidentUnexpected:
			s.Unexpected++
		case inventory.IncidentNotFound:
			s.NotFound++
		}
	}
	s.Matched = theoreticalCount - s.Missing - s.Mismatch
	if s.Matched < 0 {
		s.Matched = 0
	}
	return s
}

// carriedNotFound keeps live not_found incidents whose code is still unknown to both
// inventories.
func carriedNotFound(store *inventory.Store, previous []inventory.Incident) []inventory.Incident {
	var kept []inventory.Incident
	for _, inc := range previous {
		if inc.Type != inventory.IncidentNotFound {
			continue
		}
		if _, ok := store.FindTheoretical(inc.Code); ok {
			continue
		}
		if _, ok := store.FindReal(inc.Code); ok {
			continue
		}
		kept = append(kept, inc)
	}
	return kept
}
