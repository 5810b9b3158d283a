package domain

import "time"

// SpooledRow is a projected row that exhausted its delivery attempts and
// was journaled locally for later resubmission. The spool stores rows, not
// Reports: a Report is single-use and never persisted.
type SpooledRow struct {
	// ID identifies the spool entry.
	ID string

	// CreatedAt is when the row was spooled.
	CreatedAt time.Time

	// Row is the projected seven-column row, in sheet order.
	Row []string
}
