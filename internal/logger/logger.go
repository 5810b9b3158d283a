// Package logger provides leveled logging for haulbot.
// Info, Warn and Error always print; Debug messages are gated behind the
// --verbose flag. The output writer is swappable so the control panel can
// tail the log into its log pane.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if debug logging is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Used by the control panel and tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(output, ts+" ["+level+"] "+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	v := verbose
	mu.RUnlock()
	if v {
		write("DEBUG", format, args...)
	}
}

// Info prints an informational message.
func Info(format string, args ...any) {
	write("INFO", format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	write("WARN", format, args...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	write("ERROR", format, args...)
}
