package logging

// Logger is the logging interface used by the fswrap command.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...any)

	// Info logs informational messages about normal operations.
	Info(format string, args ...any)

	// Error logs error messages.
	Error(format string, args ...any)
}

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*NullLogger)(nil)
)
