package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, DefaultMaxAttempts, settings.Delivery.MaxAttempts)
	assert.Equal(t, DefaultDelay, settings.Delivery.Delay)
	assert.Equal(t, DefaultLLMBaseURL, settings.LLM.BaseURL)
	assert.Equal(t, DefaultLLMModel, settings.LLM.Model)
	assert.Equal(t, LexiconEnglish, settings.Parser.Lexicon)
	assert.Equal(t, DefaultWorkers, settings.Intake.Workers)

	// No secrets have defaults
	assert.Empty(t, settings.Bot.Token)
	assert.Empty(t, settings.Sheets.CredentialsPath)
	assert.Empty(t, settings.LLM.APIKey)
}

func TestAppSettings_Validate(t *testing.T) {
	valid := DefaultAppSettings()
	valid.Sheets.CredentialsPath = "/tmp/creds.json"
	valid.Sheets.Spreadsheet = "sheet-id"

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("missing credentials", func(t *testing.T) {
		s := valid
		s.Sheets.CredentialsPath = ""
		require.Error(t, s.Validate())
	})

	t.Run("missing spreadsheet", func(t *testing.T) {
		s := valid
		s.Sheets.Spreadsheet = ""
		require.Error(t, s.Validate())
	})

	t.Run("bad attempts", func(t *testing.T) {
		s := valid
		s.Delivery.MaxAttempts = 0
		require.Error(t, s.Validate())
	})

	t.Run("unknown lexicon", func(t *testing.T) {
		s := valid
		s.Parser.Lexicon = "xx"
		require.ErrorIs(t, s.Validate(), ErrUnknownLexicon)
	})

	t.Run("collects all problems", func(t *testing.T) {
		s := AppSettings{}
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "credentials")
		assert.Contains(t, err.Error(), "spreadsheet")
	})
}

func TestIsConfigured(t *testing.T) {
	assert.False(t, BotSettings{}.IsConfigured())
	assert.True(t, BotSettings{Token: "123:abc"}.IsConfigured())

	assert.False(t, SheetSettings{Spreadsheet: "id"}.IsConfigured())
	assert.False(t, SheetSettings{CredentialsPath: "/k.json"}.IsConfigured())
	assert.True(t, SheetSettings{CredentialsPath: "/k.json", Spreadsheet: "id"}.IsConfigured())

	assert.False(t, LLMSettings{BaseURL: "https://x", Model: "m"}.IsConfigured())
	assert.True(t, LLMSettings{APIKey: "key"}.IsConfigured())
}

func TestDefaultDelayIsSeconds(t *testing.T) {
	assert.Equal(t, 2*time.Second, DefaultDelay)
}
