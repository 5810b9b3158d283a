package driven

import (
	"context"

	"github.com/haulware/haulbot/internal/core/domain"
)

// Spool journals rows whose delivery attempts were exhausted so an
// operator can resubmit them later. Optional - when nil, exhausted rows
// are dropped after logging.
type Spool interface {
	// Save journals a row.
	Save(ctx context.Context, row []string) error

	// List returns all spooled rows, oldest first.
	List(ctx context.Context) ([]domain.SpooledRow, error)

	// Delete removes a spooled row after successful resubmission.
	Delete(ctx context.Context, id string) error

	// Close releases resources.
	Close() error
}
