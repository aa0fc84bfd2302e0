package tabload

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := ldr.Run(ctx, cfg)
//	if errors.Is(err, tabload.ErrTableExists) {
//	    // The target table was already present; nothing was overwritten.
//	}
var (
	// ErrMissingDatabaseURL indicates no database URL was found in the
	// project config, CLI flags, or environment.
	ErrMissingDatabaseURL = errors.New("database URL not configured")

	// ErrInvalidConfig indicates the resolved configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDirectoryNotFound indicates the source directory does not exist
	// or is not a directory.
	ErrDirectoryNotFound = errors.New("source directory not found")

	// ErrFileNotFound indicates an explicitly named input file is missing,
	// or a directory scan matched no tabular files.
	ErrFileNotFound = errors.New("input file not found")

	// ErrUnsupportedFormat indicates a file extension no reader handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrTableExists indicates the target table already exists. The loader
	// never overwrites or appends to an existing table.
	ErrTableExists = errors.New("table already exists")

	// ErrConnectionFailed indicates the database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnsupportedAuthMethod indicates the requested authentication
	// method is not supported.
	ErrUnsupportedAuthMethod = errors.New("unsupported authentication method")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors and ExitUsageError (2) for CLI
// misuse. Every other fatal error maps to ExitGeneralError (1): the run
// either completed or it did not, and the diagnostic text carries the detail.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if isUsageError(err) {
		return ExitUsageError
	}
	return ExitGeneralError
}

// isUsageError matches the error messages cobra and pflag produce for
// command-line misuse.
func isUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "invalid argument") ||
		strings.HasPrefix(msg, "required flag") ||
		strings.Contains(msg, "arg(s), received")
}
