package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnknownLexicon indicates an unrecognised parser lexicon name.
	ErrUnknownLexicon = errors.New("unknown lexicon")

	// ErrNotConfigured indicates a required setting is missing.
	ErrNotConfigured = errors.New("not configured")

	// ErrLLMUnavailable indicates the language model is not configured.
	// Reply augmentation is disabled; the pipeline still runs.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrSpoolUnavailable indicates no spool is configured.
	// Rows that exhaust their delivery attempts are dropped after logging.
	ErrSpoolUnavailable = errors.New("spool unavailable")
)
