package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "aldus"
	databaseName = "aldus.sqlite"
)

// ConfigDir returns the directory holding config.toml, following the XDG
// Base Directory spec ($XDG_CONFIG_HOME/aldus, default ~/.config/aldus).
func ConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// DataDir returns the directory holding the database and other mutable
// state ($XDG_DATA_HOME/aldus, default ~/.local/share/aldus).
func DataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// DatabasePath resolves the SQLite database location, preferring the
// configured override.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

// EnsureDirectories creates the config and data directories if missing.
func EnsureDirectories() error {
	for _, fn := range []func() (string, error){ConfigDir, DataDir} {
		dir, err := fn()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	return nil
}
