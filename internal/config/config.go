// Package config loads arpeggio's TOML configuration, creating a
// default file on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the top-level TOML structure.
type Config struct {
	// DBPath is the SQLite database location. Empty means the default
	// under the user data dir.
	DBPath string `toml:"db_path"`

	// LogPath is the zap log file location. Empty means the default
	// next to the database.
	LogPath string `toml:"log_path"`

	// RowsPerPage bounds the catalog list height in the TUI.
	RowsPerPage int `toml:"rows_per_page"`

	Preview PreviewConfig `toml:"preview"`
}

// PreviewConfig tunes the generated pattern previews.
type PreviewConfig struct {
	Steps int    `toml:"steps"` // preview length in steps
	Seed  uint64 `toml:"seed"`  // seed for stochastic generators
}

const defaultConfigTOML = `# Arpeggio configuration
# db_path and log_path default to the user data directory when empty.

db_path = ""
log_path = ""
rows_per_page = 20

[preview]
steps = 32
seed = 1
`

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RowsPerPage: 20,
		Preview:     PreviewConfig{Steps: 32, Seed: 1},
	}
}

// Dir returns the directory for arpeggio config files, using
// XDG_CONFIG_HOME or the platform equivalent.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "arpeggio"), nil
}

// Path returns the full path to the config.toml file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, creating it with defaults if missing.
// A broken file falls back to defaults with the parse error returned
// alongside, so callers can warn without dying.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file at an explicit path, creating it with
// defaults if missing.
func LoadFrom(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return Default(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0644); wErr != nil {
			return Default(), fmt.Errorf("write default config: %w", wErr)
		}
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps nonsense values back to defaults.
func (c *Config) normalize() {
	if c.RowsPerPage < 5 {
		c.RowsPerPage = 20
	}
	if c.Preview.Steps < 8 || c.Preview.Steps > 128 {
		c.Preview.Steps = 32
	}
}

// ResolveDBPath returns the database path, applying the default location
// when the config leaves it empty.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("user home dir: %w", err)
	}
	return filepath.Join(home, ".arpeggio", "arpeggio.db"), nil
}

// ResolveLogPath returns the log file path, defaulting to a file next
// to the database.
func (c Config) ResolveLogPath() (string, error) {
	if c.LogPath != "" {
		return c.LogPath, nil
	}
	dbPath, err := c.ResolveDBPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dbPath), "arpeggio.log"), nil
}
