// Package report renders the incident list and the audit log for download.
//
// The incident report is a plain A4 PDF: a title followed by one numbered line per
// incident, in the current incident order:
//
//	1. [missing] 750100 — esperado: 12 — actual: 0
//	2. [not_found] 999 — esperado: - — actual: -
//
// Paginate exposes the page layout so it can be checked without parsing PDF output.
//
// The audit log is exported as indented JSON by default, or YAML.
//
// # Usage
//
//	err := report.WriteIncidentsPDF(w, store.Incidents())
//	err = report.WriteHistory(w, store.History(), report.FormatYAML)
package report
