package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-adjustable settings.
type Config struct {
	Log   Log   `toml:"log"`
	Theme Theme `toml:"theme"`
}

// Log configures the session log file.
type Log struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Theme is the status line palette. Colors are #RRGGBB values or W3C
// color names; the terminal layer parses them.
type Theme struct {
	Accent string `toml:"accent"`
	Bar    string `toml:"bar"`
}

// Default returns the built-in configuration: no log file, info level,
// and the stock palette.
func Default() Config {
	return Config{
		Log: Log{Level: "info"},
		Theme: Theme{
			Accent: "#B890F3",
			Bar:    "#434659",
		},
	}
}

// DefaultPath is the conventional config location, rill/config.toml
// under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "rill", "config.toml"), nil
}

// Load reads the TOML file at path over the defaults. A missing file
// is not an error; settings absent from the file keep their default
// values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Theme.Accent == "" || c.Theme.Bar == "" {
		return fmt.Errorf("theme colors must not be empty")
	}
	return nil
}
