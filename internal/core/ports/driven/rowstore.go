package driven

import "context"

// RowStore appends rows to the external tabular store.
//
// Implementations are request/response clients with no shared mutable
// state beyond the transport connection; a store handle is produced by a
// connect factory and replaced, never reconfigured in place.
type RowStore interface {
	// EnsureHeader writes the header row at store initialisation when
	// row 1 is absent or does not match the given columns.
	EnsureHeader(ctx context.Context, columns []string) error

	// Append appends one row after the last data row. The call is a
	// single attempt; retry policy belongs to the caller.
	Append(ctx context.Context, row []string) error
}
