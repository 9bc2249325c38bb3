// Package config loads hxel server and CLI configuration from TOML or YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/pthm/hxel/lib/styles"
)

// ErrUnsupportedFormat is returned for config files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// Config is the complete configuration.
type Config struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Theme  ThemeConfig  `toml:"theme" yaml:"theme"`
	Cache  CacheConfig  `toml:"cache" yaml:"cache"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Styles StylesConfig `toml:"styles" yaml:"styles"`
}

// ServerConfig configures the HTTP server of `hxel serve`.
type ServerConfig struct {
	Addr            string        `toml:"addr" yaml:"addr" validate:"required,hostname_port"`
	Stylesheet      string        `toml:"stylesheet" yaml:"stylesheet" validate:"omitempty,startswith=/"`
	RequireHTMX     bool          `toml:"require_htmx" yaml:"require_htmx"`
	ReadTimeout     time.Duration `toml:"read_timeout" yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `toml:"write_timeout" yaml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gte=0"`
}

// ThemeConfig selects a built-in theme and overrides its colors. Each
// color is a list of hex variants from darkest to lightest.
type ThemeConfig struct {
	Base   string              `toml:"base" yaml:"base" validate:"oneof=light dark"`
	Name   string              `toml:"name" yaml:"name"`
	Colors map[string][]string `toml:"colors" yaml:"colors" validate:"dive,keys,oneof=primary secondary success info warning danger light dark white black,endkeys,min=1,dive,themecolor"`
}

// CacheConfig selects the stylesheet cache.
type CacheConfig struct {
	Driver   string        `toml:"driver" yaml:"driver" validate:"oneof=memory redis none"`
	RedisURL string        `toml:"redis_url" yaml:"redis_url" validate:"required_if=Driver redis,omitempty,url"`
	Key      string        `toml:"key" yaml:"key" validate:"required_if=Driver redis"`
	Prefix   string        `toml:"prefix" yaml:"prefix"`
	TTL      time.Duration `toml:"ttl" yaml:"ttl" validate:"gte=0"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `toml:"level" yaml:"level" validate:"oneof=debug info warn error"`
}

// StylesConfig lists YAML stylesheets served alongside component styles.
type StylesConfig struct {
	Files []string `toml:"files" yaml:"files" validate:"dive,required"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            "localhost:8080",
			Stylesheet:      "/styles.css",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Theme: ThemeConfig{Base: "light"},
		Cache: CacheConfig{Driver: "memory"},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads and validates a config file. The format follows the file
// extension: .toml, .yaml or .yml. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates config data in the given format.
func Parse(data []byte, format string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(format) {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// BuildTheme returns the base theme with the configured name and colors.
func (c *Config) BuildTheme() *styles.Theme {
	theme := styles.LightTheme()
	if c.Theme.Base == "dark" {
		theme = styles.DarkTheme()
	}
	if c.Theme.Name != "" {
		theme.Name = c.Theme.Name
	}

	for name, variants := range c.Theme.Colors {
		colors := make([]styles.Color, len(variants))
		for i, v := range variants {
			colors[i] = styles.Color(v)
		}
		if slot := colorSlot(&theme.Colors, name); slot != nil {
			*slot = styles.Range(colors...)
		}
	}
	return theme
}

func colorSlot(c *styles.Colors, name string) *styles.ColorRange {
	switch name {
	case "primary":
		return &c.Primary
	case "secondary":
		return &c.Secondary
	case "success":
		return &c.Success
	case "info":
		return &c.Info
	case "warning":
		return &c.Warning
	case "danger":
		return &c.Danger
	case "light":
		return &c.Light
	case "dark":
		return &c.Dark
	case "white":
		return &c.White
	case "black":
		return &c.Black
	}
	return nil
}

// StyleCache opens the configured stylesheet cache.
func (c *Config) StyleCache() (styles.Cache, error) {
	switch c.Cache.Driver {
	case "none":
		return styles.NullCache{}, nil
	case "redis":
		var opts []styles.RedisOption
		if c.Cache.Prefix != "" {
			opts = append(opts, styles.WithPrefix(c.Cache.Prefix))
		}
		if c.Cache.TTL > 0 {
			opts = append(opts, styles.WithTTL(c.Cache.TTL))
		}
		return styles.NewRedisCache(c.Cache.RedisURL, []byte(c.Cache.Key), opts...)
	}
	return styles.NewMemoryCache(), nil
}

// LoadStyles reads the configured YAML stylesheets and merges them in
// order.
func (c *Config) LoadStyles() (styles.Styles, error) {
	sheets := make([]styles.Sheet, 0, len(c.Styles.Files))
	for _, path := range c.Styles.Files {
		sheet, err := loadStyleFile(path)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return styles.Collect(nil, sheets...), nil
}

func loadStyleFile(path string) (styles.Styles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open stylesheet: %w", err)
	}
	defer f.Close()

	sheet, err := styles.LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return sheet, nil
}
