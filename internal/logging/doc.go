// Package logging provides the Logger interface and its implementations.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted lines to stderr or any io.Writer
//   - NullLogger: Discards all messages (useful for testing)
//
// The fswrap library packages never log; only the command does.
package logging
