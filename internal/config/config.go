package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation constants
const (
	MinInterval = 1    // Minimum refresh/reset interval in seconds
	MaxInterval = 3600 // Maximum refresh/reset interval in seconds

	// Default values
	DefaultSourceLabel     = "EST"
	DefaultSourceZone      = "US/Eastern"
	DefaultTargetLabel     = "PST"
	DefaultTargetZone      = "US/Pacific"
	DefaultRefreshInterval = 5  // seconds
	DefaultResetDelay      = 10 // seconds
	DefaultResetMode       = ResetStacked
	DefaultLogLevel        = "info"
	DefaultShortcutName    = "worktime.desktop"
)

// ResetMode controls what happens to a pending auto-reset when a newer
// conversion arms another one
type ResetMode string

const (
	// ResetRestart lets only the most recently armed reset fire
	ResetRestart ResetMode = "restart"
	// ResetStacked lets every armed reset fire, so an older one may wipe
	// newer input
	ResetStacked ResetMode = "stacked"
)

// Zone is one labelled time zone
type Zone struct {
	Label string `yaml:"label"`
	ID    string `yaml:"id"`
}

// Zones holds the fixed conversion pair
type Zones struct {
	Source Zone `yaml:"source"`
	Target Zone `yaml:"target"`
}

// Shortcut configures the desktop launcher installed on first run
type Shortcut struct {
	Enabled *bool  `yaml:"enabled"` // Pointer to distinguish between false and unset
	Name    string `yaml:"name"`
	Dir     string `yaml:"dir"`
	Icon    string `yaml:"icon"`
}

// Config represents the application configuration
type Config struct {
	Zones           Zones     `yaml:"zones"`
	RefreshInterval int       `yaml:"refresh_interval"` // seconds
	ResetDelay      int       `yaml:"reset_delay"`      // seconds
	ResetMode       ResetMode `yaml:"reset_mode"`
	LogLevel        string    `yaml:"log_level"`
	LogFile         string    `yaml:"log_file"`
	MetricsFile     string    `yaml:"metrics_file"`
	Shortcut        Shortcut  `yaml:"shortcut"`
}

// Load loads configuration from a YAML file and applies environment variable
// overrides. An empty path skips the file and uses defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		// #nosec G304 -- Config file path is provided by the user via CLI flag
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("environment variable error: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// RefreshEvery returns the clock refresh interval
func (c *Config) RefreshEvery() time.Duration {
	return time.Duration(c.RefreshInterval) * time.Second
}

// ResetAfter returns the auto-reset delay
func (c *Config) ResetAfter() time.Duration {
	return time.Duration(c.ResetDelay) * time.Second
}

// ShortcutEnabled reports whether the desktop launcher should be installed
func (c *Config) ShortcutEnabled() bool {
	return c.Shortcut.Enabled == nil || *c.Shortcut.Enabled
}

// applyDefaults sets default values for configuration
func applyDefaults(cfg *Config) {
	if cfg.Zones.Source.Label == "" {
		cfg.Zones.Source.Label = DefaultSourceLabel
	}
	if cfg.Zones.Source.ID == "" {
		cfg.Zones.Source.ID = DefaultSourceZone
	}
	if cfg.Zones.Target.Label == "" {
		cfg.Zones.Target.Label = DefaultTargetLabel
	}
	if cfg.Zones.Target.ID == "" {
		cfg.Zones.Target.ID = DefaultTargetZone
	}
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.ResetDelay == 0 {
		cfg.ResetDelay = DefaultResetDelay
	}
	if cfg.ResetMode == "" {
		cfg.ResetMode = DefaultResetMode
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Shortcut.Enabled == nil {
		enabled := true
		cfg.Shortcut.Enabled = &enabled
	}
	if cfg.Shortcut.Name == "" {
		cfg.Shortcut.Name = DefaultShortcutName
	}
}

// applyEnvOverrides applies environment variable overrides to configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("WORKTIME_SOURCE_LABEL"); val != "" {
		cfg.Zones.Source.Label = val
	}
	if val := os.Getenv("WORKTIME_SOURCE_ZONE"); val != "" {
		cfg.Zones.Source.ID = val
	}
	if val := os.Getenv("WORKTIME_TARGET_LABEL"); val != "" {
		cfg.Zones.Target.Label = val
	}
	if val := os.Getenv("WORKTIME_TARGET_ZONE"); val != "" {
		cfg.Zones.Target.ID = val
	}

	if val := os.Getenv("WORKTIME_REFRESH_INTERVAL"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid WORKTIME_REFRESH_INTERVAL: must be an integer, got %q", val)
		}
		cfg.RefreshInterval = i
	}

	if val := os.Getenv("WORKTIME_RESET_DELAY"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid WORKTIME_RESET_DELAY: must be an integer, got %q", val)
		}
		cfg.ResetDelay = i
	}

	if val := os.Getenv("WORKTIME_RESET_MODE"); val != "" {
		cfg.ResetMode = ResetMode(strings.ToLower(val))
	}

	if val := os.Getenv("WORKTIME_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
	if val := os.Getenv("WORKTIME_LOG_FILE"); val != "" {
		cfg.LogFile = val
	}
	if val := os.Getenv("WORKTIME_METRICS_FILE"); val != "" {
		cfg.MetricsFile = val
	}

	if val := os.Getenv("WORKTIME_SHORTCUT"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid WORKTIME_SHORTCUT: must be a boolean, got %q", val)
		}
		cfg.Shortcut.Enabled = &b
	}

	return nil
}

// validate validates the configuration. Zone identifiers are resolved later
// by the zone package; here only their presence is checked.
func validate(cfg *Config) error {
	zones := []struct {
		role string
		zone Zone
	}{
		{"source", cfg.Zones.Source},
		{"target", cfg.Zones.Target},
	}
	for _, z := range zones {
		if strings.TrimSpace(z.zone.Label) == "" {
			return fmt.Errorf("%s zone has empty label", z.role)
		}
		if strings.TrimSpace(z.zone.ID) == "" {
			return fmt.Errorf("%s zone has empty id", z.role)
		}
	}

	if strings.EqualFold(cfg.Zones.Source.Label, cfg.Zones.Target.Label) {
		return fmt.Errorf("source and target labels must differ, both are %q", cfg.Zones.Source.Label)
	}

	if cfg.RefreshInterval < MinInterval || cfg.RefreshInterval > MaxInterval {
		return fmt.Errorf("refresh_interval must be between %d and %d seconds, got %d", MinInterval, MaxInterval, cfg.RefreshInterval)
	}

	if cfg.ResetDelay < MinInterval || cfg.ResetDelay > MaxInterval {
		return fmt.Errorf("reset_delay must be between %d and %d seconds, got %d", MinInterval, MaxInterval, cfg.ResetDelay)
	}

	switch cfg.ResetMode {
	case ResetRestart, ResetStacked:
	default:
		return fmt.Errorf("reset_mode must be %q or %q, got %q", ResetRestart, ResetStacked, cfg.ResetMode)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	if strings.ContainsAny(cfg.Shortcut.Name, `/\`) {
		return fmt.Errorf("shortcut name must be a file name, got %q", cfg.Shortcut.Name)
	}

	return nil
}
