// Package config loads and saves the burndown TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all burndown configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Chart      ChartConfig      `toml:"chart"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig holds the initial project-list ordering.
type GeneralConfig struct {
	SortKey   string `toml:"sort_key"`
	Direction string `toml:"direction"`
}

// ChartConfig holds chart surface sizes.
type ChartConfig struct {
	Width     int `toml:"width"`      // terminal cells
	Height    int `toml:"height"`     // terminal rows
	SVGWidth  int `toml:"svg_width"`  // pixels
	SVGHeight int `toml:"svg_height"` // pixels
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig controls the debug log.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			SortKey:   "progress",
			Direction: "descending",
		},
		Chart: ChartConfig{
			Width:     60,
			Height:    16,
			SVGWidth:  640,
			SVGHeight: 360,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "burndown")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "burndown")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config location
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize replaces unusable sizes with the defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Chart.Width < 10 {
		c.Chart.Width = def.Chart.Width
	}
	if c.Chart.Height < 4 {
		c.Chart.Height = def.Chart.Height
	}
	if c.Chart.SVGWidth <= 0 {
		c.Chart.SVGWidth = def.Chart.SVGWidth
	}
	if c.Chart.SVGHeight <= 0 {
		c.Chart.SVGHeight = def.Chart.SVGHeight
	}
}

// Save writes the config to the default location.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes the config to path, creating its directory.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // see LoadFile
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Theme returns the theme from env var or config, in that order.
func Theme(cfg Config) string {
	if name := os.Getenv("BURNDOWN_THEME"); name != "" {
		return name
	}
	return cfg.Appearance.Theme
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
