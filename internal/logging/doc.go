// Package logging provides concrete implementations of the decomment.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr, coloring prefixes on terminals
//   - NullLogger: Discards all messages (the default for walks and tests)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
