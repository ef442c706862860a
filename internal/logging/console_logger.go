package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ConsoleLogger writes log lines to a writer, stderr by default.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	out     io.Writer
	verbose bool
	color   bool
	mu      sync.Mutex

	verbosePrefix lipgloss.Style
	errorPrefix   lipgloss.Style
}

// NewConsoleLogger creates a logger on stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewWriterLogger(os.Stderr, verbose, false)
}

// NewWriterLogger creates a logger on w. With color set, the level prefixes
// carry ANSI colors even when w is not a terminal.
func NewWriterLogger(w io.Writer, verbose, color bool) *ConsoleLogger {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return &ConsoleLogger{
		out:           w,
		verbose:       verbose,
		color:         color,
		verbosePrefix: r.NewStyle().Foreground(lipgloss.Color("240")),
		errorPrefix:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.write(l.prefix("[VERBOSE]", l.verbosePrefix), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...any) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...any) {
	l.write(l.prefix("[ERROR]", l.errorPrefix), format, args)
}

func (l *ConsoleLogger) prefix(tag string, style lipgloss.Style) string {
	if l.color {
		tag = style.Render(tag)
	}
	return tag + " "
}

func (l *ConsoleLogger) write(prefix, format string, args []any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, prefix+msg+"\n")
}
