package services

import (
	"fmt"
	"os"
	"time"

	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/core/ports/driven"
	"github.com/haulware/haulbot/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.Settings = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyBotToken     = "bot.token"
	KeyCredsPath    = "sheets.credentials_path"
	KeySpreadsheet  = "sheets.spreadsheet"
	KeyMaxAttempts  = "delivery.max_attempts"
	KeyDelaySeconds = "delivery.delay_seconds"
	KeyLLMAPIKey    = "llm.api_key"
	KeyLLMBaseURL   = "llm.base_url"
	KeyLLMModel     = "llm.model"
	KeyLexicon      = "parser.lexicon"
	KeyWorkers      = "intake.workers"
)

// Environment variables overriding the settings file. The names follow
// the deployment conventions the sheet was originally operated with.
const (
	EnvBotToken    = "BOT_TOKEN"
	EnvCredsPath   = "GOOGLE_APPLICATION_CREDENTIALS"
	EnvSpreadsheet = "SPREADSHEET_ID"
	EnvLLMAPIKey   = "TOGETHER_API_KEY"
)

// SettingsService resolves application settings with the precedence
// environment variable, then settings file, then built-in default.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Bot: domain.BotSettings{
			Token: s.getEnvOrStored(EnvBotToken, KeyBotToken, ""),
		},
		Sheets: domain.SheetSettings{
			CredentialsPath: s.getEnvOrStored(EnvCredsPath, KeyCredsPath, ""),
			Spreadsheet:     s.getEnvOrStored(EnvSpreadsheet, KeySpreadsheet, ""),
		},
		Delivery: domain.DeliverySettings{
			MaxAttempts: s.getInt(KeyMaxAttempts, defaults.Delivery.MaxAttempts),
			Delay:       s.getDelay(defaults.Delivery.Delay),
		},
		LLM: domain.LLMSettings{
			APIKey:  s.getEnvOrStored(EnvLLMAPIKey, KeyLLMAPIKey, ""),
			BaseURL: s.getString(KeyLLMBaseURL, defaults.LLM.BaseURL),
			Model:   s.getString(KeyLLMModel, defaults.LLM.Model),
		},
		Parser: domain.ParserSettings{
			Lexicon: s.getLexicon(defaults.Parser.Lexicon),
		},
		Intake: domain.IntakeSettings{
			Workers: s.getInt(KeyWorkers, defaults.Intake.Workers),
		},
	}

	return settings, nil
}

// Save persists application settings to the settings file. Environment
// overrides are deliberately not written back: a value that came from the
// environment stays in the environment.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := map[string]any{
		KeyBotToken:     settings.Bot.Token,
		KeyCredsPath:    settings.Sheets.CredentialsPath,
		KeySpreadsheet:  settings.Sheets.Spreadsheet,
		KeyMaxAttempts:  settings.Delivery.MaxAttempts,
		KeyDelaySeconds: int(settings.Delivery.Delay / time.Second),
		KeyLLMAPIKey:    settings.LLM.APIKey,
		KeyLLMBaseURL:   settings.LLM.BaseURL,
		KeyLLMModel:     settings.LLM.Model,
		KeyLexicon:      settings.Parser.Lexicon.String(),
		KeyWorkers:      settings.Intake.Workers,
	}
	for key, value := range values {
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// Set stores a single raw settings key.
func (s *SettingsService) Set(key string, value any) error {
	return s.configStore.Set(key, value)
}

// Reload re-reads the settings file from disk.
func (s *SettingsService) Reload() error {
	return s.configStore.Load()
}

// Path returns the settings file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// getEnvOrStored resolves a value from the environment first, then the
// settings file, then the default.
func (s *SettingsService) getEnvOrStored(envName, key, fallback string) string {
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return s.getString(key, fallback)
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

func (s *SettingsService) getDelay(fallback time.Duration) time.Duration {
	if v := s.configStore.GetInt(KeyDelaySeconds); v > 0 {
		return time.Duration(v) * time.Second
	}
	return fallback
}

func (s *SettingsService) getLexicon(fallback domain.LexiconName) domain.LexiconName {
	name := domain.LexiconName(s.configStore.GetString(KeyLexicon))
	if name.IsValid() {
		return name
	}
	return fallback
}
