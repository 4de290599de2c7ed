// Package config loads the demo host configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the host-surface settings: logging, theme colors, and
// keybindings. The selection command semantics themselves are fixed
// and take no configuration.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Theme ThemeConfig `toml:"theme"`
	Keys  KeysConfig  `toml:"keys"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is the minimum level to log: debug, info, warn, error.
	Level string `toml:"level"`
	// File is the log destination path. Empty disables logging,
	// since stderr is occupied by the terminal UI.
	File string `toml:"file"`
}

// ThemeConfig configures view colors. Values are tcell color names
// ("silver", "teal", ...) or #rrggbb hex strings.
type ThemeConfig struct {
	Foreground         string `toml:"foreground"`
	Background         string `toml:"background"`
	PrimarySelection   string `toml:"primary_selection"`
	SecondarySelection string `toml:"secondary_selection"`
	StatusForeground   string `toml:"status_foreground"`
	StatusBackground   string `toml:"status_background"`
}

// KeysConfig configures key bindings for the selection actions.
// Values use tcell key names ("Ctrl-A", "Ctrl-D", "Esc").
type KeysConfig struct {
	SelectOccurrences    string `toml:"select_occurrences"`
	SelectNextOccurrence string `toml:"select_next_occurrence"`
	ClearSelections      string `toml:"clear_selections"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Theme: ThemeConfig{
			Foreground:         "silver",
			Background:         "black",
			PrimarySelection:   "teal",
			SecondarySelection: "navy",
			StatusForeground:   "black",
			StatusBackground:   "silver",
		},
		Keys: KeysConfig{
			SelectOccurrences:    "Ctrl-A",
			SelectNextOccurrence: "Ctrl-D",
			ClearSelections:      "Esc",
		},
	}
}

// Load reads configuration from path, layered over the defaults.
// A missing file is not an error; the defaults are returned.
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
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the conventional config location under the
// user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "multisel", "config.toml")
}
