package cli

import (
	"context"
	"fmt"

	"github.com/haulware/haulbot/internal/adapters/driven/llm/openai"
	"github.com/haulware/haulbot/internal/adapters/driven/sheets"
	"github.com/haulware/haulbot/internal/adapters/driven/storage/sqlite"
	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/core/ports/driven"
	"github.com/haulware/haulbot/internal/core/ports/driving"
	"github.com/haulware/haulbot/internal/core/services"
	"github.com/haulware/haulbot/internal/logger"
)

// buildIntake connects the full delivery pipeline for the given
// settings: sheet store, spool, optional LLM, extractor and deliverer.
// The returned cleanup releases everything the pipeline opened. All
// handles are bound to this settings snapshot; a reload builds a fresh
// pipeline instead of reconfiguring this one.
func buildIntake(ctx context.Context, settings *domain.AppSettings) (driving.Intake, func(), error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	extractor, err := newExtractor(settings)
	if err != nil {
		return nil, nil, err
	}

	store, err := sheets.Connect(ctx, settings.Sheets.CredentialsPath, settings.Sheets.Spreadsheet)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to the sheet: %w", err)
	}
	if err := store.EnsureHeader(ctx, domain.Columns()); err != nil {
		return nil, nil, fmt.Errorf("writing the sheet header: %w", err)
	}

	// The spool is a local fallback; a broken spool degrades delivery
	// failure handling but must not stop the pipeline.
	var spool driven.Spool
	sqliteSpool, err := sqlite.NewSpool("")
	if err != nil {
		logger.Warn("Spool unavailable, exhausted rows will be dropped: %v", err)
	} else {
		spool = sqliteSpool
	}

	llm := connectLLM(ctx, settings.LLM)

	deliverer := services.NewDeliverer(store, spool, settings.Delivery)
	intake := services.NewIntakeService(extractor, deliverer, llm)

	cleanup := func() {
		if sqliteSpool != nil {
			if err := sqliteSpool.Close(); err != nil {
				logger.Warn("Failed to close spool: %v", err)
			}
		}
		if llm != nil {
			_ = llm.Close()
		}
	}
	return intake, cleanup, nil
}

// newExtractor builds the extractor for the configured lexicon.
func newExtractor(settings *domain.AppSettings) (*services.Extractor, error) {
	lex, err := domain.LexiconByName(settings.Parser.Lexicon)
	if err != nil {
		return nil, err
	}
	return services.NewExtractor(lex)
}

// connectLLM builds the reply-augmentation client when configured and
// reachable. Any failure disables augmentation rather than failing
// startup.
func connectLLM(ctx context.Context, cfg domain.LLMSettings) driven.LLMService {
	if !cfg.IsConfigured() {
		return nil
	}

	llm, err := openai.NewLLMService(openai.LLMConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	})
	if err != nil {
		logger.Warn("Reply augmentation disabled: %v", err)
		return nil
	}
	if err := llm.Ping(ctx); err != nil {
		logger.Warn("Reply augmentation disabled, LLM unreachable: %v", err)
		return nil
	}

	logger.Info("Reply augmentation enabled with model %s", llm.ModelName())
	return llm
}
