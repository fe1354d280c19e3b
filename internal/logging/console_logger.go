package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vvka-141/decomment/pkg/decomment"
)

// Color palette for message prefixes.
var (
	colorVerbose = lipgloss.Color("240") // Dark gray
	colorError   = lipgloss.Color("196") // Red
)

// ConsoleLogger writes log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose      bool
	out          io.Writer
	verboseLabel string
	errorLabel   string
	mu           sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
// Prefixes are colored only when stderr is a terminal.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerWithWriter(os.Stderr, verbose, term.IsTerminal(int(os.Stderr.Fd())))
}

// NewConsoleLoggerWithWriter creates a ConsoleLogger writing to out.
func NewConsoleLoggerWithWriter(out io.Writer, verbose, styled bool) *ConsoleLogger {
	l := &ConsoleLogger{
		verbose:      verbose,
		out:          out,
		verboseLabel: "[VERBOSE]",
		errorLabel:   "[ERROR]",
	}
	if styled {
		renderer := lipgloss.NewRenderer(out)
		l.verboseLabel = renderer.NewStyle().Foreground(colorVerbose).Render(l.verboseLabel)
		l.errorLabel = renderer.NewStyle().Foreground(colorError).Bold(true).Render(l.errorLabel)
	}
	return l
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.verboseLabel+" ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.errorLabel+" ", format, args)
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.out, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.out, prefix+format+"\n")
	}
}

var _ decomment.Logger = (*ConsoleLogger)(nil)
