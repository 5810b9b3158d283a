package services

import (
	"context"
	"time"

	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/core/ports/driven"
	"github.com/haulware/haulbot/internal/logger"
)

// Deliverer wraps the external append with bounded retry: up to
// MaxAttempts tries with a fixed delay between failures. Delivery is
// at-least-once; a retried call whose earlier write actually landed can
// produce a duplicate row. No cancellation: once an attempt sequence
// starts it runs to completion.
type Deliverer struct {
	store driven.RowStore
	spool driven.Spool // optional
	cfg   domain.DeliverySettings

	// sleep is the pause between attempts, replaceable in tests.
	sleep func(time.Duration)
}

// NewDeliverer creates a deliverer over the given store. The spool may be
// nil; rows that exhaust their attempts are then dropped after logging.
func NewDeliverer(store driven.RowStore, spool driven.Spool, cfg domain.DeliverySettings) *Deliverer {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Deliverer{
		store: store,
		spool: spool,
		cfg:   cfg,
		sleep: time.Sleep,
	}
}

// WithSleep replaces the inter-attempt pause. Used by tests.
func (d *Deliverer) WithSleep(sleep func(time.Duration)) *Deliverer {
	d.sleep = sleep
	return d
}

// Deliver attempts to append the row, retrying on failure. It returns
// true on the first success and false once the attempt ceiling is
// exhausted. Transport errors never propagate past this boundary; each
// failure is logged with its attempt number and cause.
func (d *Deliverer) Deliver(ctx context.Context, row []string) bool {
	for attempt := 1; attempt <= d.cfg.MaxAttempts; attempt++ {
		err := d.store.Append(ctx, row)
		if err == nil {
			logger.Info("row appended (attempt %d)", attempt)
			return true
		}
		logger.Error("append failed (attempt %d): %v", attempt, err)
		if attempt < d.cfg.MaxAttempts {
			d.sleep(d.cfg.Delay)
		}
	}

	d.spoolRow(ctx, row)
	return false
}

// spoolRow journals an undeliverable row for later resubmission. Spool
// failures are logged and otherwise ignored; the caller already reports
// the delivery failure.
func (d *Deliverer) spoolRow(ctx context.Context, row []string) {
	if d.spool == nil {
		return
	}
	if err := d.spool.Save(ctx, row); err != nil {
		logger.Error("spool undelivered row: %v", err)
		return
	}
	logger.Info("undelivered row spooled for resubmission")
}
