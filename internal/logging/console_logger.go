package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardour-tools/ardourfix/internal/tui"
	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

var _ ardourfix.Logger = (*ConsoleLogger)(nil)

// ConsoleLogger writes log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	color   bool
	out     io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to os.Stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose, color bool) *ConsoleLogger {
	return NewConsoleLoggerTo(nil, verbose, color)
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to w, or to whatever
// os.Stderr is at write time when w is nil. When color is true the level
// prefixes are styled.
func NewConsoleLoggerTo(w io.Writer, verbose, color bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		color:   color,
		out:     w,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", tui.VerboseStyle, format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", tui.InfoStyle, format, args)
}

// Warn logs warnings.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write("[WARN] ", tui.WarnStyle, format, args)
}

func (l *ConsoleLogger) write(prefix string, style lipgloss.Style, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if l.color && prefix != "" {
		prefix = style.Render(prefix[:len(prefix)-1]) + " "
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprint(out, prefix+msg+"\n")
}
