package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	plantsFileName   = "greenhouse.json"
	settingsFileName = "settings.yaml"
)

// Paths locates the files the application keeps in its private directory.
type Paths struct {
	Dir string
}

// ResolvePaths returns the per-user data directory for appName.
func ResolvePaths(appName string) (Paths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return Paths{}, fmt.Errorf("resolve user config dir: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return Paths{Dir: filepath.Join(configDir, appName)}, nil
}

// Ensure creates the data directory if it does not exist yet.
func (paths Paths) Ensure() error {
	if err := os.MkdirAll(paths.Dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

// Plants is the location of greenhouse.json.
func (paths Paths) Plants() string {
	return filepath.Join(paths.Dir, plantsFileName)
}

// Settings is the location of settings.yaml.
func (paths Paths) Settings() string {
	return filepath.Join(paths.Dir, settingsFileName)
}
