// Package scan turns scanned barcodes into store mutations.
//
// # Processor
//
// Processor.Process classifies one code against the current store state. There is no
// per-code state between scans; each scan is classified independently:
//
//	not in either inventory -> live not_found incident, scan_not_found audit, error notice
//	already in real          -> qty + 1, increment audit, success notice
//	only in theoretical      -> new real record (qty 1), add_from_scan audit, success notice
//
// # Input assembly
//
// Barcode readers usually behave as keyboards: they type the code and press Enter.
// KeyBuffer reproduces that behaviour for raw key streams, while line-oriented
// inputs go through Normalize. Both reject empty input the same way.
//
// # Notifications
//
// Every classified scan produces a Notification. Board keeps the latest one for a
// limited time; LogNotifier sends them to the log.
package scan
