// Package reconcile compares the theoretical inventory with the counted one.
//
// A run is a single full pass over both collections using two lookup tables, so it
// is O(n + m). Each theoretical item yields at most one incident:
//
//   - missing: no real record exists for the code (expected = qty, actual = 0)
//   - mismatch: a real record exists with a different quantity
//
// and each real record without a theoretical counterpart yields an unexpected
// incident (expected = 0, actual = qty). The three sets are disjoint and together
// cover every code that is not an exact match.
//
// # Incident list replacement
//
// Run replaces the store's incident list. By default this discards the live
// not_found incidents recorded while scanning; set Options.KeepNotFound to carry
// them over.
//
// # Usage
//
//	report := reconcile.Run(store, reconcile.Options{})
//	fmt.Println(report.Summary.Missing)
package reconcile
