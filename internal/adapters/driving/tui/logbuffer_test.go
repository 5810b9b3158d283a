package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBuffer_SplitsLines(t *testing.T) {
	buf := NewLogBuffer()

	_, err := buf.Write([]byte("first\nsecond\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, buf.Tail(10))
}

func TestLogBuffer_CarriesPartialLine(t *testing.T) {
	buf := NewLogBuffer()

	_, _ = buf.Write([]byte("par"))
	assert.Empty(t, buf.Tail(10))

	_, _ = buf.Write([]byte("tial\nnext"))
	assert.Equal(t, []string{"partial"}, buf.Tail(10))
}

func TestLogBuffer_TailReturnsMostRecent(t *testing.T) {
	buf := NewLogBuffer()

	_, _ = buf.Write([]byte("a\nb\nc\n"))

	assert.Equal(t, []string{"b", "c"}, buf.Tail(2))
	assert.Equal(t, []string{"a", "b", "c"}, buf.Tail(3))
}

func TestLogBuffer_DropsOldestBeyondCapacity(t *testing.T) {
	buf := NewLogBuffer()

	for i := 0; i < maxLogLines+10; i++ {
		fmt.Fprintf(buf, "line %d\n", i)
	}

	tail := buf.Tail(maxLogLines + 10)
	require.Len(t, tail, maxLogLines)
	assert.Equal(t, "line 10", tail[0])
	assert.Equal(t, fmt.Sprintf("line %d", maxLogLines+9), tail[len(tail)-1])
}
