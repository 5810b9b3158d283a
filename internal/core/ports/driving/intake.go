package driving

import (
	"context"

	"github.com/haulware/haulbot/internal/core/domain"
)

// Intake runs the message-to-record pipeline. Both driving surfaces (chat
// transport and control panel) reduce an interaction to the single string
// passed here.
type Intake interface {
	// Preview extracts a report without delivering it. Used by the
	// panel's check action and the one-shot CLI command.
	Preview(text string) domain.Report

	// Submit extracts a report, projects it and delivers the row,
	// blocking until the delivery succeeds or the attempt ceiling is
	// exhausted. It never returns an error: extraction is total and
	// delivery failure is reported in the outcome.
	Submit(ctx context.Context, text string) domain.Outcome
}
