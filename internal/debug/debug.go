package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/standardbeagle/line/internal/types"
)

// Build flag for debug mode - can be overridden at build time
// go build -ldflags "-X github.com/standardbeagle/line/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// IsDebugEnabled returns true if debug mode was switched on at build time
// or through the DEBUG environment variable
func IsDebugEnabled() bool {
	// Check build flag first
	if EnableDebug == "true" {
		return true
	}

	// Allow runtime override via environment variable
	return os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true"
}

// Logger writes diagnostics to an explicit writer. A nil or disabled logger
// writes nothing, except warnings, which only need a writer.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	enabled bool
}

// New creates a logger writing to w. It is enabled when requested or when
// IsDebugEnabled reports true.
func New(w io.Writer, enabled bool) *Logger {
	return &Logger{out: w, enabled: enabled || IsDebugEnabled()}
}

// Enabled reports whether output will be written
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled && l.out != nil
}

// Log provides structured debug logging with component names
func (l *Logger) Log(component, format string, args ...interface{}) {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[DEBUG:%s] "+format, append([]interface{}{component}, args...)...)
}

// Warnf reports a problem the run recovers from, such as an ignored config
// value. Warnings are written whether or not debugging is enabled.
func (l *Logger) Warnf(component, format string, args ...interface{}) {
	if l == nil || l.out == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[WARN:%s] "+format+"\n", append([]interface{}{component}, args...)...)
}

// LogMatcher writes a rendered matcher on a line of its own, unprefixed
func (l *Logger) LogMatcher(inspected string) {
	l.raw(inspected)
}

// LogLine writes one line of input with its indexes, e.g. "a\n", 1, nil
func (l *Logger) LogLine(content string, positive int, negative types.NegativeIndex) {
	l.raw(fmt.Sprintf("%q, %d, %s", content, positive, negative))
}

// LogBlock writes preformatted text as is
func (l *Logger) LogBlock(text string) {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, text)
}

func (l *Logger) raw(line string) {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, line)
}
