package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_StartsEmpty(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	assert.Empty(t, store.GetString("bot.token"))
	_, ok := store.Get("bot.token")
	assert.False(t, ok)
}

func TestSet_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("bot.token", "123:abc"))
	require.NoError(t, store.Set("delivery.max_attempts", 5))
	require.NoError(t, store.Set("llm.enabled", true))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "123:abc", reopened.GetString("bot.token"))
	assert.Equal(t, 5, reopened.GetInt("delivery.max_attempts"))
	assert.True(t, reopened.GetBool("llm.enabled"))
}

func TestSave_WritesSectionedTOML(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("sheets.spreadsheet", "sheet-id"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	assert.Contains(t, string(raw), "[sheets]")
	assert.Contains(t, string(raw), "spreadsheet = 'sheet-id'")
}

func TestLoad_FlattensNestedKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[delivery]\nmax_attempts = 4\ndelay_seconds = 3\n\n[parser]\nlexicon = 'ru'\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 4, store.GetInt("delivery.max_attempts"))
	assert.Equal(t, 3, store.GetInt("delivery.delay_seconds"))
	assert.Equal(t, "ru", store.GetString("parser.lexicon"))
}

func TestGet_TypeMismatchesReturnZeroValues(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("parser.lexicon", "ru"))

	assert.Equal(t, 0, store.GetInt("parser.lexicon"))
	assert.False(t, store.GetBool("parser.lexicon"))
	assert.Empty(t, store.GetString("missing.key"))
}
