package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/core/ports/driven"
	"github.com/haulware/haulbot/internal/core/ports/driving"
	"github.com/haulware/haulbot/internal/logger"
)

// Ensure IntakeService implements the interface.
var _ driving.Intake = (*IntakeService)(nil)

// notePrompt asks the model for the one-line acknowledgement appended to
// the confirmation reply. %s is the raw message text.
const notePrompt = `A field operator reported an equipment breakdown: %q.
Write one short, plain sentence acknowledging the report and naming the
reported problem. Do not ask questions. Do not give repair advice.`

// IntakeService runs the message-to-record pipeline: extraction,
// projection, delivery, and the optional model-generated reply note.
type IntakeService struct {
	extractor *Extractor
	deliverer *Deliverer
	llm       driven.LLMService // optional
}

// NewIntakeService creates the pipeline service. llm may be nil.
func NewIntakeService(extractor *Extractor, deliverer *Deliverer, llm driven.LLMService) *IntakeService {
	return &IntakeService{
		extractor: extractor,
		deliverer: deliverer,
		llm:       llm,
	}
}

// Preview extracts a report without delivering it.
func (s *IntakeService) Preview(text string) domain.Report {
	return s.extractor.Extract(text)
}

// Submit runs the full pipeline for one message. The report is built
// fresh, projected to a row and delivered; it is not retained afterwards.
// Failures surface in the outcome, never as an error.
func (s *IntakeService) Submit(ctx context.Context, text string) domain.Outcome {
	id := uuid.NewString()
	logger.Debug("intake %s: %d bytes", id, len(text))

	report := s.extractor.Extract(text)
	delivered := s.deliverer.Deliver(ctx, report.Row())
	if !delivered {
		logger.Warn("intake %s: delivery attempts exhausted", id)
	}

	outcome := domain.Outcome{Report: report, Delivered: delivered}
	if delivered && s.llm != nil {
		outcome.Note = s.generateNote(ctx, text, id)
	}
	return outcome
}

// generateNote asks the model for the acknowledgement note. A failed call
// degrades to an empty note; it never fails the pipeline.
func (s *IntakeService) generateNote(ctx context.Context, text, id string) string {
	note, err := s.llm.Generate(ctx, fmt.Sprintf(notePrompt, text), driven.GenerateOptions{
		MaxTokens:   150,
		Temperature: 0.4,
	})
	if err != nil {
		logger.Warn("intake %s: note generation failed: %v", id, err)
		return ""
	}
	return strings.TrimSpace(note)
}
