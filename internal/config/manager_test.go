package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulware/haulbot/internal/adapters/driven/config/file"
	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/core/services"
)

// staticSettings is a settings double with no backing file.
type staticSettings struct{}

func (staticSettings) Get() (*domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	return &s, nil
}
func (staticSettings) Save(*domain.AppSettings) error { return nil }
func (staticSettings) Set(string, any) error          { return nil }
func (staticSettings) Reload() error                  { return nil }
func (staticSettings) Path() string                   { return "" }

func TestWatch_NoPathBlocksUntilCancelled(t *testing.T) {
	manager := NewManager(staticSettings{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- manager.Watch(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_NotifiesSubscriberOnFileChange(t *testing.T) {
	dir := t.TempDir()
	store, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	svc := services.NewSettingsService(store)

	t.Setenv(services.EnvBotToken, "")

	manager := NewManager(svc)
	received := make(chan *domain.AppSettings, 1)
	manager.Subscribe(func(s *domain.AppSettings) {
		select {
		case received <- s:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = manager.Watch(ctx) }()

	// The watcher registers asynchronously, so keep rewriting the file
	// until a reload comes through.
	content := []byte("[bot]\ntoken = '123:abc'\n")
	deadline := time.After(5 * time.Second)
	for {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), content, 0600))
		select {
		case settings := <-received:
			assert.Equal(t, "123:abc", settings.Bot.Token)
			return
		case <-deadline:
			t.Fatal("no reload notification received")
		case <-time.After(400 * time.Millisecond):
		}
	}
}

func TestReload_NotifiesAllSubscribers(t *testing.T) {
	manager := NewManager(staticSettings{})

	var calls int
	manager.Subscribe(func(*domain.AppSettings) { calls++ })
	manager.Subscribe(func(*domain.AppSettings) { calls++ })

	manager.reload()

	assert.Equal(t, 2, calls)
}
