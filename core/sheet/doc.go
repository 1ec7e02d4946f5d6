// Package sheet converts the theoretical inventory to and from xlsx workbooks.
//
// Import accepts the header spellings found in real stock sheets (Spanish and
// English, several casings) and coerces quantities with utils.ToQty, so a bad cell
// becomes 0 instead of failing the whole file. Export produces the template users
// fill in: one "Inventory" sheet with code, name and qty columns.
package sheet
