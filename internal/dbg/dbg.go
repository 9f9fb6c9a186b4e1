// Package dbg provides the trace-logging convention used by the
// quadtree: a thin wrapper around the standard log package, silent
// unless a caller opts in.
package dbg

import "log"

// Logger writes trace lines for a single subsystem, prefixed so the
// output of several subsystems interleaves legibly.
type Logger struct {
	prefix  string
	enabled bool
}

// New returns a Logger for the given subsystem, disabled by default.
func New(prefix string) *Logger {
	return &Logger{prefix: prefix}
}

// Enable turns tracing on or off.
func (l *Logger) Enable(on bool) {
	l.enabled = on
}

// Printf logs a trace line if the logger is enabled. A nil Logger is
// treated as disabled.
func (l *Logger) Printf(format string, args ...interface{}) {
	if l == nil || !l.enabled {
		return
	}
	log.Printf("["+l.prefix+"] "+format, args...)
}
