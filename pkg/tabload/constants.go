package tabload

import "strings"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0 // All requested files loaded
	ExitGeneralError = 1 // Any fatal error (config, selection, read, or database)
	ExitUsageError   = 2 // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3 // Internal panic (unexpected crash)
)

const (
	// DefaultSchema is the target schema when none is configured.
	DefaultSchema = "public"

	// DefaultDir is the source directory when none is configured.
	DefaultDir = "."

	// DefaultSeparator is the CSV field separator when none is configured.
	DefaultSeparator = ","

	// DefaultEncoding is the text encoding assumed for CSV files.
	DefaultEncoding = "utf-8"

	// DefaultBatchSize is the number of rows sent per INSERT round-trip.
	DefaultBatchSize = 2000

	// MaxBindParameters is the PostgreSQL limit on bind parameters per
	// statement. Effective batch sizes are clamped so that
	// batch * columns never exceeds it.
	MaxBindParameters = 65535
)

// SupportedExtensions lists the tabular file formats the loader accepts,
// lowercase with leading dot. Extension matching is case-insensitive.
var SupportedExtensions = []string{".csv", ".xlsx", ".xls"}

// IsSupportedExtension reports whether ext (with leading dot, any case)
// names a supported tabular format.
func IsSupportedExtension(ext string) bool {
	for _, e := range SupportedExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
