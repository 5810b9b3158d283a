package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulware/haulbot/internal/adapters/driven/storage/memory"
	"github.com/haulware/haulbot/internal/core/domain"
)

var errAppend = errors.New("append failed")

func newTestDeliverer(store *memory.RowStore, spool *memory.Spool) (*Deliverer, *int) {
	sleeps := 0
	var d *Deliverer
	if spool == nil {
		d = NewDeliverer(store, nil, domain.DeliverySettings{MaxAttempts: 3, Delay: 2 * time.Second})
	} else {
		d = NewDeliverer(store, spool, domain.DeliverySettings{MaxAttempts: 3, Delay: 2 * time.Second})
	}
	d.WithSleep(func(time.Duration) { sleeps++ })
	return d, &sleeps
}

func TestDeliver_FirstAttemptSucceeds(t *testing.T) {
	store := memory.NewRowStore()
	d, sleeps := newTestDeliverer(store, nil)

	ok := d.Deliver(context.Background(), []string{"a", "b"})

	assert.True(t, ok)
	assert.Equal(t, 1, store.AppendCalls())
	assert.Equal(t, 0, *sleeps)
	require.Len(t, store.Rows, 1)
	assert.Equal(t, []string{"a", "b"}, store.Rows[0])
}

func TestDeliver_RecoversWithinAttemptCeiling(t *testing.T) {
	store := memory.NewRowStore()
	store.FailAppends = 2
	store.AppendErr = errAppend
	d, sleeps := newTestDeliverer(store, nil)

	ok := d.Deliver(context.Background(), []string{"a"})

	assert.True(t, ok)
	assert.Equal(t, 3, store.AppendCalls())
	assert.Equal(t, 2, *sleeps)
	assert.Len(t, store.Rows, 1)
}

func TestDeliver_ExhaustsAttempts(t *testing.T) {
	store := memory.NewRowStore()
	store.FailAppends = 3
	store.AppendErr = errAppend
	d, sleeps := newTestDeliverer(store, nil)

	ok := d.Deliver(context.Background(), []string{"a"})

	assert.False(t, ok)
	assert.Equal(t, 3, store.AppendCalls())
	// No pause after the final failure
	assert.Equal(t, 2, *sleeps)
	assert.Empty(t, store.Rows)
}

func TestDeliver_SpoolsExhaustedRow(t *testing.T) {
	store := memory.NewRowStore()
	store.FailAppends = 3
	store.AppendErr = errAppend
	spool := memory.NewSpool()
	d, _ := newTestDeliverer(store, spool)

	row := []string{"org", "ts", "773"}
	ok := d.Deliver(context.Background(), row)

	assert.False(t, ok)
	spooled, err := spool.List(context.Background())
	require.NoError(t, err)
	require.Len(t, spooled, 1)
	assert.Equal(t, row, spooled[0].Row)
}

func TestDeliver_SuccessDoesNotSpool(t *testing.T) {
	store := memory.NewRowStore()
	spool := memory.NewSpool()
	d, _ := newTestDeliverer(store, spool)

	ok := d.Deliver(context.Background(), []string{"a"})

	assert.True(t, ok)
	spooled, err := spool.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, spooled)
}

func TestNewDeliverer_ClampsAttemptCeiling(t *testing.T) {
	store := memory.NewRowStore()
	store.FailAppends = 5
	store.AppendErr = errAppend

	d := NewDeliverer(store, nil, domain.DeliverySettings{MaxAttempts: 0})
	d.WithSleep(func(time.Duration) {})

	ok := d.Deliver(context.Background(), []string{"a"})

	assert.False(t, ok)
	assert.Equal(t, 1, store.AppendCalls())
}
