// Package config loads and validates the sub2clip TOML configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Defaults holds the default rendering parameters applied when a flag or form
// field is left unset.
type Defaults struct {
	FPS        int    `toml:"fps"`
	Resolution int    `toml:"resolution"`
	Format     string `toml:"format"`
	FontName   string `toml:"font_name"`
	FontSize   int    `toml:"font_size"`
	CRF        int    `toml:"crf"`
	Preset     string `toml:"preset"`
}

// Subtitles holds subtitle track selection preferences.
type Subtitles struct {
	Languages []string `toml:"languages"`
	IncludeCC bool     `toml:"include_cc"`
}

// Output holds artifact placement preferences.
type Output struct {
	Dir      string `toml:"dir"`
	KeepClip bool   `toml:"keep_clip"`
}

// Config is the top-level sub2clip configuration.
type Config struct {
	Defaults  Defaults  `toml:"defaults"`
	Subtitles Subtitles `toml:"subtitles"`
	Output    Output    `toml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			FPS:        20,
			Resolution: 320,
			Format:     "gif",
			FontName:   "Arial",
			FontSize:   24,
			CRF:        18,
			Preset:     "fast",
		},
		Subtitles: Subtitles{
			Languages: []string{"eng"},
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.config/sub2clip/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sub2clip", "config.toml"), nil
}

// Load reads the configuration from path, falling back to the default
// location when path is empty and to built-in defaults when no file exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks configuration values that would otherwise fail much later
// inside an encoder invocation.
func (c *Config) Validate() error {
	if c.Defaults.FPS <= 0 || c.Defaults.FPS > 120 {
		return fmt.Errorf("defaults.fps must be in 1..120, got %d", c.Defaults.FPS)
	}
	if c.Defaults.Resolution <= 0 {
		return fmt.Errorf("defaults.resolution must be positive, got %d", c.Defaults.Resolution)
	}
	switch c.Defaults.Format {
	case "gif", "webp", "mp4":
	default:
		return fmt.Errorf("defaults.format must be gif, webp, or mp4, got %q", c.Defaults.Format)
	}
	if c.Defaults.FontSize <= 0 {
		return fmt.Errorf("defaults.font_size must be positive, got %d", c.Defaults.FontSize)
	}
	if c.Defaults.CRF < 0 || c.Defaults.CRF > 51 {
		return fmt.Errorf("defaults.crf must be in 0..51, got %d", c.Defaults.CRF)
	}
	return nil
}

// WriteSample writes the embedded sample configuration to path, creating
// parent directories. It refuses to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0644)
}
