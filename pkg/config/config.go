package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete procmount configuration.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority, applied by the caller after Load)
//  2. Environment variables (PROCMOUNT_*)
//  3. Configuration file (YAML or TOML)
//  4. Default values (lowest priority)
//
// Output Configuration Pattern:
// Each output format defines its own options. The Output struct contains
// format-specific sections (output.table, output.json) and only the section
// matching the selected format is used.
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging"`

	// Source selects which mount table to read
	Source SourceConfig `mapstructure:"source"`

	// Output selects the output format and format-specific options
	Output OutputConfig `mapstructure:"output"`

	// Filter restricts which mounts are shown
	Filter FilterConfig `mapstructure:"filter"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// SourceConfig selects the mount table to read.
//
// The Type field determines where the table comes from. Only the
// corresponding field (PID or Path) is used.
type SourceConfig struct {
	// Type specifies the mount table source
	// Valid values: self, pid, file
	Type string `mapstructure:"type" validate:"required,oneof=self pid file"`

	// PID is the target process id
	// Only used when Type = "pid"
	PID uint32 `mapstructure:"pid"`

	// Path is a mountinfo-formatted file to read
	// Only used when Type = "file"
	Path string `mapstructure:"path"`
}

// OutputConfig specifies output format configuration.
//
// The Format field determines which renderer is used.
// Only the corresponding format-specific section is used.
type OutputConfig struct {
	// Format specifies the output renderer
	// Valid values: table, json, yaml
	Format string `mapstructure:"format" validate:"required,oneof=table json yaml"`

	// Table contains table-specific options
	// Only used when Format = "table"
	Table map[string]any `mapstructure:"table"`

	// JSON contains JSON-specific options
	// Only used when Format = "json"
	JSON map[string]any `mapstructure:"json"`

	// YAML contains YAML-specific options
	// Only used when Format = "yaml"
	YAML map[string]any `mapstructure:"yaml"`
}

// FilterConfig restricts which mounts are shown. An empty filter matches
// every mount.
type FilterConfig struct {
	// FSTypes limits output to mounts with one of these filesystem types
	FSTypes []string `mapstructure:"fstypes"`

	// Prefix limits output to mount points under this path prefix
	Prefix string `mapstructure:"prefix"`
}

// Load loads configuration from file, environment, and defaults.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (PROCMOUNT_*)
//  2. Configuration file
//  3. Default values
//
// Parameters:
//   - configPath: Path to config file (empty string uses default location)
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: Configuration loading or validation error
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures viper with environment variables and config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use PROCMOUNT_ prefix and underscores
	// Example: PROCMOUNT_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("PROCMOUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		// Use explicitly specified config file
		v.SetConfigFile(configPath)
	} else {
		// Use default location: $XDG_CONFIG_HOME/procmount/config.{yaml,toml}
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		// An explicitly specified file that does not exist surfaces as a
		// *fs.PathError instead; let that propagate.
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to current
// directory (.) if home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "procmount")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "procmount")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
