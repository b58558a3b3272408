package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvLogDir       = "POMO_LOG_DIR"
	EnvLanguage     = "POMO_LANGUAGE"
	EnvBarGlyph     = "POMO_BAR_GLYPH"
	EnvMute         = "POMO_MUTE"
	EnvTimezone     = "POMO_TIMEZONE"
	EnvExportFormat = "POMO_EXPORT_FORMAT"
)

// Config holds the user settings of the timer. Phase durations are fixed
// and deliberately absent.
type Config struct {
	// Directory receiving exported session logs
	LogDir string `yaml:"log_dir"`

	// Display settings, reloadable while running
	Language string `yaml:"language"`
	BarGlyph string `yaml:"bar_glyph"`
	Mute     bool   `yaml:"mute"`

	Timezone     string `yaml:"timezone"`
	ExportFormat string `yaml:"export_format"` // csv, json
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		LogDir:       ".",
		Language:     "en",
		BarGlyph:     "🟩",
		Mute:         false,
		Timezone:     "Local",
		ExportFormat: "csv",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LogDir == "" {
		c.LogDir = "."
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.Language == "" {
		c.Language = "en"
	}

	c.ExportFormat = strings.ToLower(c.ExportFormat)
	switch c.ExportFormat {
	case "":
		c.ExportFormat = "csv"
	case "csv", "json":
	default:
		return fmt.Errorf("invalid export format '%s': must be either 'csv' or 'json'", c.ExportFormat)
	}
	return nil
}

// Loader builds a Config from defaults, an optional YAML file, the
// environment and finally caller overrides (command-line flags).
type Loader struct {
	Path      string
	Overrides func(*Config)
}

// Load reads the configuration. A missing file is not an error.
func (l Loader) Load() (Config, error) {
	cfg := Default()

	if l.Path != "" {
		if err := readFile(l.Path, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if l.Overrides != nil {
		l.Overrides(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from .env files without overriding the
// environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config yaml %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvLogDir); ok && v != "" {
		cfg.LogDir = v
	}
	if v, ok := os.LookupEnv(EnvLanguage); ok && v != "" {
		cfg.Language = v
	}
	if v, ok := os.LookupEnv(EnvBarGlyph); ok && v != "" {
		cfg.BarGlyph = v
	}
	if v, ok := os.LookupEnv(EnvTimezone); ok && v != "" {
		cfg.Timezone = v
	}
	if v, ok := os.LookupEnv(EnvExportFormat); ok && v != "" {
		cfg.ExportFormat = v
	}
	if v, ok := os.LookupEnv(EnvMute); ok && v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value '%s': %w", EnvMute, v, err)
		}
		cfg.Mute = mute
	}
	return nil
}
