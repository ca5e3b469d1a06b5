// Package tuples is the catalog of built-in intermediate tables: one definition
// and one typed row wrapper per table, plus the enumerations and bitmasks the
// columns carry.
//
// Everything except the registry is generated from catalog.yaml.
package tuples

//go:generate go run ../../cmd/tuplegen --catalog catalog.yaml --out .
