// Package config provides configuration management for sai-core.
//
// This package handles:
// - Configuration file parsing (YAML)
// - Environment variable overrides
// - Configuration validation
//
// Configuration Priority (highest to lowest):
// 1. Environment variables (SAI_CORE_*)
// 2. Configuration file
// 3. Default values
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the global configuration structure for a sai-core process.
type Config struct {
	// Switch contains virtual-switch driver settings.
	Switch SwitchConfig `json:"switch" yaml:"switch"`

	// Logging contains logging configuration.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Metrics contains metrics-endpoint configuration.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

// SwitchConfig configures the virtual-switch driver's default topology
// (§6.4's profile service-table keys, as read by api_initialize).
type SwitchConfig struct {
	// Profile selects the default topology a switch is initialized
	// with; api_initialize passes it to vs.ParseProfile:
	// "bcm56850" or "mlnx2700".
	// Default: "bcm56850"
	Profile string `json:"profile" yaml:"profile"`

	// MaxSwitches is the configured switch-instance limit; Validate
	// requires 1..255 (the range of the switch-index byte packed into
	// every OID). Switch creation does not read it.
	// Default: 8
	MaxSwitches int `json:"maxSwitches" yaml:"maxSwitches"`

	// LaneSpeedMbps is the configured default lane speed; Validate
	// requires it to be positive. A port created without an explicit
	// SAI_PORT_ATTR_SPEED takes the metadata default, not this value.
	// Default: 10000
	LaneSpeedMbps int `json:"laneSpeedMbps" yaml:"laneSpeedMbps"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `json:"level" yaml:"level"`

	// Format is the log format: "json" or "text".
	// Default: "json"
	Format string `json:"format" yaml:"format"`

	// File is the log file path (optional). If empty, logs to stdout.
	File string `json:"file" yaml:"file"`
}

// MetricsConfig contains metrics-endpoint configuration.
type MetricsConfig struct {
	// Enabled turns on the Prometheus /metrics HTTP endpoint.
	// Default: true
	Enabled bool `json:"enabled" yaml:"enabled"`

	// ListenAddress is the address the metrics server binds to.
	// Default: ":9132"
	ListenAddress string `json:"listenAddress" yaml:"listenAddress"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Switch: SwitchConfig{
			Profile:       "bcm56850",
			MaxSwitches:   8,
			LaneSpeedMbps: 10000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled:       true,
			ListenAddress: ":9132",
		},
	}
}

// LoadConfig loads configuration from file and environment variables.
//
// Configuration is loaded in the following order:
// 1. Default values
// 2. Configuration file (if specified via SAI_CORE_CONFIG_FILE env var)
// 3. Environment variable overrides
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if configFile := os.Getenv("SAI_CORE_CONFIG_FILE"); configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// ApplyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables follow the pattern
// SAI_CORE_<SECTION>_<KEY>.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SAI_CORE_SWITCH_PROFILE"); v != "" {
		c.Switch.Profile = v
	}
	if v := os.Getenv("SAI_CORE_SWITCH_MAX_SWITCHES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Switch.MaxSwitches = n
		}
	}
	if v := os.Getenv("SAI_CORE_SWITCH_LANE_SPEED_MBPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Switch.LaneSpeedMbps = n
		}
	}
	if v := os.Getenv("SAI_CORE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SAI_CORE_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("SAI_CORE_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("SAI_CORE_METRICS_ENABLED"); v != "" {
		c.Metrics.Enabled = strings.ToLower(v) == "true"
	}
	if v := os.Getenv("SAI_CORE_METRICS_LISTEN_ADDRESS"); v != "" {
		c.Metrics.ListenAddress = v
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Switch.Profile) {
	case "bcm56850", "mlnx2700":
	default:
		return fmt.Errorf("switch.profile must be bcm56850 or mlnx2700, got %q", c.Switch.Profile)
	}
	if c.Switch.MaxSwitches <= 0 || c.Switch.MaxSwitches > 255 {
		return fmt.Errorf("switch.maxSwitches must be in 1..255, got %d", c.Switch.MaxSwitches)
	}
	if c.Switch.LaneSpeedMbps <= 0 {
		return fmt.Errorf("switch.laneSpeedMbps must be positive, got %d", c.Switch.LaneSpeedMbps)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug/info/warn/error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}
	return nil
}
