// Package config defines the aldus configuration model and its TOML-backed
// manager.
package config

import (
	"fmt"

	"github.com/aldus-browser/aldus/pkg/extview"
)

// Config is the full application configuration.
type Config struct {
	// Toolkit selects the native widget toolkit for hosted views.
	Toolkit string `mapstructure:"toolkit" json:"toolkit" jsonschema:"enum=gtk4,default=gtk4,description=Native widget toolkit used for hosted extension views"`

	Logging  LoggingConfig  `mapstructure:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" json:"database"`
	Popup    PopupConfig    `mapstructure:"popup" json:"popup"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info,description=Minimum log level"`
	Format string `mapstructure:"format" json:"format" jsonschema:"enum=console,enum=json,default=console,description=Log output format"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	// Path overrides the default data-directory location when non-empty.
	Path string `mapstructure:"path" json:"path" jsonschema:"description=SQLite database path (defaults to the XDG data directory)"`
}

// PopupConfig controls popup host behavior.
type PopupConfig struct {
	// RememberSize persists popup auto-resize geometry per extension and
	// restores it on the next open.
	RememberSize bool `mapstructure:"remember_size" json:"remember_size" jsonschema:"default=true,description=Persist and restore popup sizes per extension"`
}

// Defaults returns the configuration used when no file or environment
// overrides are present.
func Defaults() *Config {
	return &Config{
		Toolkit: string(extview.ToolkitGTK4),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Popup: PopupConfig{
			RememberSize: true,
		},
	}
}

// Validate checks the configuration for values that cannot work at runtime.
func (c *Config) Validate() error {
	if c.Toolkit != string(extview.ToolkitGTK4) {
		return fmt.Errorf("unsupported toolkit %q", c.Toolkit)
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}
	return nil
}
