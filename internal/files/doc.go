// Package files resolves the concrete set of input files for a run: either
// an explicit caller-supplied list validated fail-fast, or a non-recursive
// directory scan for supported tabular formats.
package files
