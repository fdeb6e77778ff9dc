// Package prospectsdata holds build metadata and the top-level contracts
// of the construction-records importer.
package prospectsdata

var (
	// Version is set by build flags.
	Version = "v0.1.0"

	// Build timestamp is set by build flags.
	Build = "n/a"
)
