// Package render turns snapshots and trace steps into terminal text.
//
// Colour comes from fatih/color and tables from go-pretty. Without colour
// every status is still distinguishable through a marker glyph, so output
// stays readable when piped.
package render
