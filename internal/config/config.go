package config

import "github.com/quantmind-br/cargo-get/internal/manifest"

// Config represents the application configuration
type Config struct {
	Delimiter string         `mapstructure:"delimiter" yaml:"delimiter"`
	Manifest  ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	Logging   LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ManifestConfig contains manifest lookup settings
type ManifestConfig struct {
	Filename      string `mapstructure:"filename" yaml:"filename"`
	SearchParents bool   `mapstructure:"search_parents" yaml:"search_parents"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate validates the configuration, falling back to defaults for invalid values
func (c *Config) Validate() error {
	if c.Manifest.Filename == "" {
		c.Manifest.Filename = manifest.DefaultFilename
	}
	if !validLogLevels[c.Logging.Level] {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format != "pretty" && c.Logging.Format != "json" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
