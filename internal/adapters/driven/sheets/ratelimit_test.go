package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulware/haulbot/internal/core/domain"
)

func TestRateLimiter_AllowsBurst(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 3})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, rl.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestRateLimiter_BackoffHonoursContext(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)
	rl.RecordRateLimitError(30)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := rl.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestToCells(t *testing.T) {
	cells := toCells([]string{"a", "", "c"})
	assert.Equal(t, []any{"a", "", "c"}, cells)
}

func TestRowEquals(t *testing.T) {
	columns := domain.Columns()

	assert.True(t, rowEquals(toCells(columns), columns))
	assert.False(t, rowEquals(toCells(columns[:len(columns)-1]), columns))
	assert.False(t, rowEquals([]any{"x", "y"}, []string{"x", "z"}))

	// Non-string cells never match a header
	mixed := toCells(columns)
	mixed[0] = 42
	assert.False(t, rowEquals(mixed, columns))
}
