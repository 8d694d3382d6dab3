package storage

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Preferences is a lightweight integer key-value store.
// fyne.Preferences satisfies it.
type Preferences interface {
	IntWithFallback(key string, fallback int) int
	SetInt(key string, value int)
}

// SettingsFile keeps preferences in a flat YAML document and writes it
// through on every change.
type SettingsFile struct {
	mu     sync.Mutex
	path   string
	values map[string]int
}

// OpenSettings reads preferences from path.
// A missing file yields an empty store. A corrupt file yields an empty
// store together with the parse error.
func OpenSettings(path string) (*SettingsFile, error) {
	settings := &SettingsFile{
		path:   path,
		values: make(map[string]int),
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData map[string]int
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}
	for key, value := range fileData {
		settings.values[key] = value
	}
	return settings, nil
}

// IntWithFallback returns the stored value for key or fallback if unset.
func (settings *SettingsFile) IntWithFallback(key string, fallback int) int {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	value, ok := settings.values[key]
	if !ok {
		return fallback
	}
	return value
}

// SetInt stores value and persists the document. Write failures are logged.
func (settings *SettingsFile) SetInt(key string, value int) {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	settings.values[key] = value

	serialized, err := yaml.Marshal(settings.values)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("marshal settings yaml")
		return
	}
	if err := writeFileAtomic(settings.path, serialized, 0o644); err != nil {
		log.Warn().Err(err).Str("path", settings.path).Msg("write settings file")
	}
}
