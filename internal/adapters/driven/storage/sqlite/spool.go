// Package sqlite provides SQLite-backed persistence for rows whose
// delivery attempts were exhausted.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/core/ports/driven"
)

// Ensure Spool implements the interface.
var _ driven.Spool = (*Spool)(nil)

const schema = `
	CREATE TABLE IF NOT EXISTS undelivered (
		id         TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		row        TEXT NOT NULL
	)
`

// Spool is a SQLite-based implementation of driven.Spool. Rows are
// stored as JSON arrays so the column schema can evolve without a
// database migration.
type Spool struct {
	db   *sql.DB
	path string
}

// NewSpool creates a SQLite spool at the specified data directory.
// If dataDir is empty, defaults to ~/.haulbot/data/spool.db.
func NewSpool(dataDir string) (*Spool, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".haulbot", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "spool.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating undelivered table: %w", err)
	}

	return &Spool{db: db, path: dbPath}, nil
}

// Save journals a row.
func (s *Spool) Save(ctx context.Context, row []string) error {
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshaling row: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO undelivered (id, created_at, row) VALUES (?, ?, ?)",
		uuid.NewString(), time.Now().UTC(), string(data))
	if err != nil {
		return fmt.Errorf("inserting row: %w", err)
	}
	return nil
}

// List returns all spooled rows, oldest first.
func (s *Spool) List(ctx context.Context) ([]domain.SpooledRow, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, row FROM undelivered ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("querying rows: %w", err)
	}
	defer rows.Close()

	var result []domain.SpooledRow
	for rows.Next() {
		var (
			spooled domain.SpooledRow
			data    string
		)
		if err := rows.Scan(&spooled.ID, &spooled.CreatedAt, &data); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if err := json.Unmarshal([]byte(data), &spooled.Row); err != nil {
			return nil, fmt.Errorf("unmarshaling row %s: %w", spooled.ID, err)
		}
		result = append(result, spooled)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return result, nil
}

// Delete removes a spooled row by ID.
func (s *Spool) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM undelivered WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *Spool) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Spool) Path() string {
	return s.path
}
