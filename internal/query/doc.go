// Package query selects one field of a parsed package and renders it as the
// exact string printed by the CLI.
//
// Single-valued fields render as the bare value or "" when absent.
// Multi-valued fields are joined with the delimiter, in declaration order,
// without a leading or trailing delimiter and without escaping.
package query
