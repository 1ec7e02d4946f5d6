// Package utils provides loose-type coercion helpers shared by the importers and the
// record store, mainly turning spreadsheet cells and user input into quantities.
package utils
