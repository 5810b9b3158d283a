package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/haulware/haulbot/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RowStore = (*Store)(nil)

// Store is a Google Sheets implementation of driven.RowStore. All rows
// go to the first sheet of one spreadsheet.
type Store struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	limiter       *RateLimiter
}

// Connect authenticates with service account credentials and returns a
// store bound to the given spreadsheet. The spreadsheet reference may be
// a full URL or a bare document ID.
func Connect(ctx context.Context, credentialsPath, spreadsheet string) (*Store, error) {
	creds, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(creds, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account credentials: %w", err)
	}

	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &Store{
		svc:           svc,
		spreadsheetID: SpreadsheetID(spreadsheet),
		limiter:       NewRateLimiter(DefaultRateLimit),
	}, nil
}

// EnsureHeader writes the header into row 1 when it is absent or does
// not match the given columns. Existing data rows are shifted down, not
// overwritten.
func (s *Store) EnsureHeader(ctx context.Context, columns []string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, "1:1").Context(ctx).Do()
	if err != nil {
		return s.wrap(err)
	}

	if len(resp.Values) > 0 && rowEquals(resp.Values[0], columns) {
		return nil
	}

	// Row 1 holds data (or a stale header): shift everything down one
	// row before writing the header.
	if len(resp.Values) > 0 {
		insert := &sheetsapi.BatchUpdateSpreadsheetRequest{
			Requests: []*sheetsapi.Request{{
				InsertDimension: &sheetsapi.InsertDimensionRequest{
					Range: &sheetsapi.DimensionRange{
						Dimension:  "ROWS",
						StartIndex: 0,
						EndIndex:   1,
					},
				},
			}},
		}
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, insert).Context(ctx).Do(); err != nil {
			return s.wrap(err)
		}
	}

	header := &sheetsapi.ValueRange{Values: [][]any{toCells(columns)}}
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, "1:1", header).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return s.wrap(err)
}

// Append appends one row after the last data row. Values go through the
// spreadsheet's input parser so dates and numbers keep their types.
func (s *Store) Append(ctx context.Context, row []string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	body := &sheetsapi.ValueRange{Values: [][]any{toCells(row)}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, "A1", body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return s.wrap(err)
}

// SpreadsheetRef returns the bound document ID.
func (s *Store) SpreadsheetRef() string {
	return s.spreadsheetID
}

// wrap maps API errors and feeds 429 responses back into the limiter.
func (s *Store) wrap(err error) error {
	if err == nil {
		return nil
	}
	wrapped := WrapError(err)
	if IsRateLimited(wrapped) {
		s.limiter.RecordRateLimitError(0)
	}
	return wrapped
}

func toCells(row []string) []any {
	cells := make([]any, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}

func rowEquals(cells []any, columns []string) bool {
	if len(cells) != len(columns) {
		return false
	}
	for i, cell := range cells {
		str, ok := cell.(string)
		if !ok || str != columns[i] {
			return false
		}
	}
	return true
}
