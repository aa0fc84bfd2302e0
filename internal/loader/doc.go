// Package loader orchestrates a load run: it selects the input files,
// parses each one, derives the target table, and writes the rows.
//
// A run is strictly sequential and fail-fast. The first file that cannot
// be parsed or written stops the run; tables already created by earlier
// files are left in place.
package loader
