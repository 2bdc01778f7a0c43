// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/horario/internal/clock"
	"github.com/javiermolinar/horario/internal/schedule"
)

// Config holds the application configuration.
type Config struct {
	Grid   GridConfig   `toml:"grid"`
	Picker PickerConfig `toml:"picker"`
	UI     UIConfig     `toml:"ui"`
}

// GridConfig holds the initial grid shape.
type GridConfig struct {
	StepMinutes int `toml:"step_minutes"` // 1..60
	HourMin     int `toml:"hour_min"`     // 0..23
	HourMax     int `toml:"hour_max"`     // 0..23, >= hour_min
}

// PickerConfig holds the initial values of the start/end fields.
type PickerConfig struct {
	DefaultStart string `toml:"default_start"` // e.g., "00:00"
	DefaultEnd   string `toml:"default_end"`   // e.g., "23:00"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme        string `toml:"theme"`         // "mocha", "latte"
	DefaultColor string `toml:"default_color"` // "#RRGGBB"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			StepMinutes: 15,
			HourMin:     0,
			HourMax:     23,
		},
		Picker: PickerConfig{
			DefaultStart: "00:00",
			DefaultEnd:   "23:00",
		},
		UI: UIConfig{
			Theme:        "mocha",
			DefaultColor: schedule.DefaultColor,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "horario", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		env string
		dst *int
	}{
		{env: "HORARIO_STEP_MINUTES", dst: &cfg.Grid.StepMinutes},
		{env: "HORARIO_HOUR_MIN", dst: &cfg.Grid.HourMin},
		{env: "HORARIO_HOUR_MAX", dst: &cfg.Grid.HourMax},
	}
	for _, o := range ints {
		v := os.Getenv(o.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", o.env, v)
		}
		*o.dst = n
	}

	if v := os.Getenv("HORARIO_DEFAULT_START"); v != "" {
		cfg.Picker.DefaultStart = v
	}
	if v := os.Getenv("HORARIO_DEFAULT_END"); v != "" {
		cfg.Picker.DefaultEnd = v
	}
	if v := os.Getenv("HORARIO_DEFAULT_COLOR"); v != "" {
		cfg.UI.DefaultColor = v
	}
	if v := os.Getenv("HORARIO_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := schedule.ValidateConfig(c.Grid.HourMin, c.Grid.HourMax, c.Grid.StepMinutes); err != nil {
		return err
	}
	if _, err := clock.Parse(c.Picker.DefaultStart); err != nil {
		return fmt.Errorf("default_start must be in HH:MM format, got %q", c.Picker.DefaultStart)
	}
	if _, err := clock.Parse(c.Picker.DefaultEnd); err != nil {
		return fmt.Errorf("default_end must be in HH:MM format, got %q", c.Picker.DefaultEnd)
	}
	if !schedule.IsHexColor(c.UI.DefaultColor) {
		return fmt.Errorf("default_color must be in #RRGGBB format, got %q", c.UI.DefaultColor)
	}
	if c.UI.Theme == "" {
		return errors.New("theme must be set")
	}
	return nil
}

// PickerDefaults returns the parsed default start and end times.
// The config must be valid.
func (c *Config) PickerDefaults() (start, end clock.Time) {
	start, _ = clock.Parse(c.Picker.DefaultStart)
	end, _ = clock.Parse(c.Picker.DefaultEnd)
	return start, end
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
