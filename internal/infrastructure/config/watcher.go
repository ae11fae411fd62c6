package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/atom/internal/logging"
)

// reloadDebounce folds the burst of events editors emit on save.
const reloadDebounce = 150 * time.Millisecond

// Watch watches the config file and reloads on change until ctx is done.
// It watches the directory so atomic renames by editors are seen.
func (m *Manager) Watch(ctx context.Context) error {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	if m.watching {
		m.mu.Unlock()
		return nil
	}
	configFile := m.viper.ConfigFileUsed()
	m.mu.Unlock()

	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return fmt.Errorf("failed to get config file path: %w", err)
		}
	}
	configFile = filepath.Clean(configFile)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(configFile)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(configFile), err)
	}

	m.mu.Lock()
	m.watching = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.watching = false
		m.mu.Unlock()
	}()

	log.Debug().Str("file", configFile).Msg("watching config")

	timer := time.NewTimer(reloadDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != configFile {
				continue
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")
			timer.Reset(reloadDebounce)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(werr).Msg("config watcher error")
		case <-timer.C:
			m.mu.Lock()
			if err := m.reloadLocked(); err != nil {
				m.mu.Unlock()
				log.Warn().Err(err).Msg("failed to reload config, keeping previous")
				continue
			}
			log.Info().Msg("config reloaded")
			m.notifyCallbacksLocked()
		}
	}
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	configCopy := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		cfg := configCopy
		callback(&cfg)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reloadLocked rereads the config. Must be called with m.mu held for write.
// On error the previous config stays in place.
func (m *Manager) reloadLocked() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}
