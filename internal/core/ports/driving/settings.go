package driving

import "github.com/haulware/haulbot/internal/core/domain"

// Settings manages application settings. Values resolve with environment
// variables taking precedence over the settings file, which takes
// precedence over built-in defaults.
type Settings interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings to the settings file.
	// Environment overrides are not written back.
	Save(settings *domain.AppSettings) error

	// Set stores a single raw settings key.
	Set(key string, value any) error

	// Reload re-reads the settings file from disk.
	Reload() error

	// Path returns the settings file path, or "" for in-memory stores.
	Path() string
}
