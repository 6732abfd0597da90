package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/xll-gen/bin2header/internal/header"
	"gopkg.in/yaml.v3"
)

// Config represents the optional bin2header configuration file.
type Config struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Layout controls how entries are wrapped into lines.
	Layout LayoutConfig `yaml:"layout"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means standard error.
	Path string `yaml:"path"`
}

// LayoutConfig sets the line arithmetic of the generated array.
type LayoutConfig struct {
	// LineBudget is the number of characters available per body line.
	LineBudget int `yaml:"line_budget"`
	// EntryWidth is the number of characters reserved per entry.
	EntryWidth int `yaml:"entry_width"`
}

// Header converts the layout settings to a header.Layout.
func (l LayoutConfig) Header() header.Layout {
	return header.Layout{LineBudget: l.LineBudget, EntryWidth: l.EntryWidth}
}

// Load reads and parses the configuration file at path, applies defaults and
// validates the result. An empty path yields the default configuration.
//
// Parameters:
//   - path: The YAML file to read, or "".
//
// Returns:
//   - *Config: The loaded configuration.
//   - error: An error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Logging.Level == "" {
		config.Logging.Level = "warn"
	}
	if config.Layout.LineBudget == 0 {
		config.Layout.LineBudget = header.DefaultLineBudget
	}
	if config.Layout.EntryWidth == 0 {
		config.Layout.EntryWidth = header.DefaultEntryWidth
	}
}

// Validate checks the configuration for errors.
func Validate(config *Config) error {
	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
	}

	if config.Layout.LineBudget < 0 {
		return fmt.Errorf("invalid layout line_budget: %d (must not be negative)", config.Layout.LineBudget)
	}
	if config.Layout.EntryWidth < 0 {
		return fmt.Errorf("invalid layout entry_width: %d (must not be negative)", config.Layout.EntryWidth)
	}

	return nil
}
