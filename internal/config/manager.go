// Package config watches the settings file and notifies subscribers
// when it changes, so long-running processes pick up edits without a
// restart.
package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/core/ports/driving"
	"github.com/haulware/haulbot/internal/logger"
)

// debounceDelay coalesces the burst of events an editor save produces
// into one reload.
const debounceDelay = 250 * time.Millisecond

// Manager watches the settings file for changes. On each change it
// reloads settings and fans the fresh snapshot out to subscribers.
// Subscribers swap in new dependency handles; in-flight work keeps the
// handles it started with.
type Manager struct {
	settings driving.Settings

	mu   sync.Mutex
	subs []func(*domain.AppSettings)
}

// NewManager creates a manager over the given settings service.
func NewManager(settings driving.Settings) *Manager {
	return &Manager{settings: settings}
}

// Subscribe registers a callback invoked with the new settings after
// each reload. Callbacks run on the watch goroutine and should return
// quickly.
func (m *Manager) Subscribe(fn func(*domain.AppSettings)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Watch blocks watching the settings file until ctx is cancelled.
// Editors and the settings command replace the file rather than write
// in place, so the watch is on the parent directory.
func (m *Manager) Watch(ctx context.Context) error {
	path := m.settings.Path()
	if path == "" {
		// In-memory settings have nothing to watch.
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	reloads := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case reloads <- struct{}{}:
				default:
				}
			})

		case <-reloads:
			m.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Settings watch error: %v", err)
		}
	}
}

// reload re-reads settings and notifies subscribers.
func (m *Manager) reload() {
	if err := m.settings.Reload(); err != nil {
		logger.Error("Failed to reload settings: %v", err)
		return
	}
	settings, err := m.settings.Get()
	if err != nil {
		logger.Error("Failed to read reloaded settings: %v", err)
		return
	}

	logger.Info("Settings file changed, reloaded")

	m.mu.Lock()
	subs := append([]func(*domain.AppSettings){}, m.subs...)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(settings)
	}
}
