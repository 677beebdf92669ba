// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/animo/internal/widget"
)

// Default configuration values.
const (
	DefaultStatusTimeout = 3 * time.Second
)

// Config represents the animo configuration.
// It only tunes presentation; phrases and counters are never stored here.
type Config struct {
	Widget    WidgetConfig    `toml:"widget"`
	TUI       TUIConfig       `toml:"tui"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// WidgetConfig holds widget settings.
type WidgetConfig struct {
	CounterTemplate string `toml:"counter_template"` // text/template, {{.Count}}
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	ShowHelp      bool     `toml:"show_help"`
	ShowGradient  bool     `toml:"show_gradient"`
	WatchConfig   bool     `toml:"watch_config"`   // Hot-reload this file while the TUI runs
	StatusTimeout Duration `toml:"status_timeout"` // How long status lines stay visible
}

// ClipboardConfig holds clipboard settings (TUI only).
type ClipboardConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// Duration is a time.Duration that can be unmarshaled from human-readable strings
// like "3s" or "1m30s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '3s', '1m', '1m30s': %w", string(text), err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Widget: WidgetConfig{
			CounterTemplate: widget.DefaultCounterTemplate,
		},
		TUI: TUIConfig{
			ShowHelp:      true,
			ShowGradient:  true,
			WatchConfig:   true,
			StatusTimeout: Duration(DefaultStatusTimeout),
		},
		Clipboard: ClipboardConfig{
			Command: "", // Auto-detect
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "animo", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that TOML decoding cannot.
func (c *Config) Validate() error {
	if _, err := widget.ParseCounterTemplate(c.Widget.CounterTemplate); err != nil {
		return err
	}
	if c.TUI.StatusTimeout < 0 {
		return fmt.Errorf("invalid status_timeout %s: must not be negative", c.TUI.StatusTimeout.Duration())
	}
	return nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
