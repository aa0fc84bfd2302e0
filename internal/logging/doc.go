// Package logging provides concrete implementations of the tabload.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to a destination writer (stderr by default)
//   - NullLogger: discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
