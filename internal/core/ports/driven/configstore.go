package driven

// ConfigStore provides persistent key-value configuration storage.
// Keys use dot notation, e.g. "sheets.spreadsheet".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	GetBool(key string) bool

	// Set stores a configuration value and persists it.
	Set(key string, value any) error

	// Load re-reads the persisted configuration, discarding unsaved
	// in-memory state. Used after the settings file changes on disk.
	Load() error

	// Path returns the backing file path, or "" for in-memory stores.
	Path() string
}
