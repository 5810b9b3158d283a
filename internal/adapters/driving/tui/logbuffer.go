package tui

import (
	"strings"
	"sync"
)

// maxLogLines bounds the ring buffer backing the log pane.
const maxLogLines = 200

// LogBuffer is an io.Writer that keeps the most recent log lines so
// the panel can tail the process log. Safe for concurrent use: delivery
// workers log while the panel renders.
type LogBuffer struct {
	mu    sync.Mutex
	lines []string
	part  string
}

// NewLogBuffer creates an empty log buffer.
func NewLogBuffer() *LogBuffer {
	return &LogBuffer{}
}

// Write appends log output, splitting it into lines.
func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.part += string(p)
	for {
		idx := strings.IndexByte(b.part, '\n')
		if idx < 0 {
			break
		}
		b.lines = append(b.lines, b.part[:idx])
		b.part = b.part[idx+1:]
	}
	if len(b.lines) > maxLogLines {
		b.lines = b.lines[len(b.lines)-maxLogLines:]
	}
	return len(p), nil
}

// Tail returns up to n most recent complete lines, oldest first.
func (b *LogBuffer) Tail(n int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n > len(b.lines) {
		n = len(b.lines)
	}
	return append([]string(nil), b.lines[len(b.lines)-n:]...)
}
