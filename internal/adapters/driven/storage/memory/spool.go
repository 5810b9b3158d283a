package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/core/ports/driven"
)

// Ensure Spool implements the interface.
var _ driven.Spool = (*Spool)(nil)

// Spool is an in-memory implementation of driven.Spool for testing.
type Spool struct {
	mu   sync.Mutex
	rows []domain.SpooledRow
}

// NewSpool creates a new in-memory spool.
func NewSpool() *Spool {
	return &Spool{}
}

// Save journals a row.
func (s *Spool) Save(_ context.Context, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, domain.SpooledRow{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Row:       append([]string(nil), row...),
	})
	return nil
}

// List returns all spooled rows, oldest first.
func (s *Spool) List(_ context.Context) ([]domain.SpooledRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SpooledRow(nil), s.rows...), nil
}

// Delete removes a spooled row by ID.
func (s *Spool) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rows {
		if r.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Close releases resources (no-op for memory spool).
func (s *Spool) Close() error {
	return nil
}
