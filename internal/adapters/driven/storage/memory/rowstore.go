package memory

import (
	"context"
	"sync"

	"github.com/haulware/haulbot/internal/core/ports/driven"
)

// Ensure RowStore implements the interface.
var _ driven.RowStore = (*RowStore)(nil)

// RowStore is an in-memory implementation of driven.RowStore for testing.
// It records every appended row and can simulate a configurable number
// of failures before accepting writes.
type RowStore struct {
	mu sync.Mutex

	// Header holds the columns from the last EnsureHeader call.
	Header []string

	// Rows holds all successfully appended rows in order.
	Rows [][]string

	// FailAppends makes the next N Append calls return AppendErr.
	FailAppends int

	// AppendErr is returned while FailAppends > 0.
	AppendErr error

	appendCalls int
}

// NewRowStore creates a new in-memory row store.
func NewRowStore() *RowStore {
	return &RowStore{}
}

// EnsureHeader records the header columns.
func (s *RowStore) EnsureHeader(_ context.Context, columns []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Header = append([]string(nil), columns...)
	return nil
}

// Append records the row, or fails while FailAppends is positive.
func (s *RowStore) Append(_ context.Context, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendCalls++
	if s.FailAppends > 0 {
		s.FailAppends--
		return s.AppendErr
	}

	s.Rows = append(s.Rows, append([]string(nil), row...))
	return nil
}

// AppendCalls returns the total number of Append calls, including failures.
func (s *RowStore) AppendCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendCalls
}
