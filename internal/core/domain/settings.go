package domain

import (
	"errors"
	"time"
)

// BotSettings holds the chat transport configuration.
type BotSettings struct {
	// Token is the bot access token.
	Token string
}

// IsConfigured returns true if the chat transport can be started.
func (b BotSettings) IsConfigured() bool {
	return b.Token != ""
}

// SheetSettings holds the spreadsheet store configuration.
type SheetSettings struct {
	// CredentialsPath is the service-account JSON key file path.
	CredentialsPath string

	// Spreadsheet is the spreadsheet ID, or a full sheet link the ID is
	// extracted from.
	Spreadsheet string
}

// IsConfigured returns true if the sheet store can be connected.
func (s SheetSettings) IsConfigured() bool {
	return s.CredentialsPath != "" && s.Spreadsheet != ""
}

// DeliverySettings holds the retry policy for sheet appends.
type DeliverySettings struct {
	// MaxAttempts is the attempt ceiling. Always at least 1.
	MaxAttempts int

	// Delay is the fixed pause between failed attempts.
	Delay time.Duration
}

// LLMSettings holds the optional reply-augmentation model configuration.
type LLMSettings struct {
	// APIKey is the API key. An empty key disables augmentation.
	APIKey string

	// BaseURL is the OpenAI-compatible API endpoint.
	BaseURL string

	// Model is the chat model name.
	Model string
}

// IsConfigured returns true if reply augmentation is enabled.
func (l LLMSettings) IsConfigured() bool {
	return l.APIKey != ""
}

// ParserSettings holds the field-extractor configuration.
type ParserSettings struct {
	// Lexicon selects the keyword vocabulary.
	Lexicon LexiconName
}

// IntakeSettings holds pipeline dispatch configuration.
type IntakeSettings struct {
	// Workers bounds the number of concurrent chat deliveries.
	Workers int
}

// AppSettings holds all application settings.
type AppSettings struct {
	Bot      BotSettings
	Sheets   SheetSettings
	Delivery DeliverySettings
	LLM      LLMSettings
	Parser   ParserSettings
	Intake   IntakeSettings
}

// Default values for the optional settings.
const (
	DefaultMaxAttempts = 3
	DefaultDelay       = 2 * time.Second
	DefaultLLMBaseURL  = "https://api.together.xyz/v1"
	DefaultLLMModel    = "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free"
	DefaultWorkers     = 4
)

// DefaultAppSettings returns settings with defaults applied. The bot token
// and sheet credentials have no defaults; they must be configured through
// the environment or the settings file.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Delivery: DeliverySettings{
			MaxAttempts: DefaultMaxAttempts,
			Delay:       DefaultDelay,
		},
		LLM: LLMSettings{
			BaseURL: DefaultLLMBaseURL,
			Model:   DefaultLLMModel,
		},
		Parser: ParserSettings{
			Lexicon: LexiconEnglish,
		},
		Intake: IntakeSettings{
			Workers: DefaultWorkers,
		},
	}
}

// Validate reports configuration problems that prevent the pipeline from
// delivering rows. The bot token is checked separately because the control
// panel works without a chat transport.
func (s AppSettings) Validate() error {
	var errs []error
	if s.Sheets.CredentialsPath == "" {
		errs = append(errs, errors.New("sheet credentials path is not set"))
	}
	if s.Sheets.Spreadsheet == "" {
		errs = append(errs, errors.New("spreadsheet is not set"))
	}
	if s.Delivery.MaxAttempts < 1 {
		errs = append(errs, errors.New("delivery attempts must be at least 1"))
	}
	if !s.Parser.Lexicon.IsValid() {
		errs = append(errs, ErrUnknownLexicon)
	}
	return errors.Join(errs...)
}
