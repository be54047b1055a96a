package config

import (
	"os"
	"path/filepath"

	"github.com/quantmind-br/cargo-get/internal/manifest"
)

// Default values
const (
	// DefaultDelimiter is the symbolic name of the default list separator
	DefaultDelimiter = "LF"

	// Manifest defaults
	DefaultSearchParents = false

	// Logging defaults
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"

	// EnvPrefix prefixes environment overrides, e.g. CARGO_GET_DELIMITER
	EnvPrefix = "CARGO_GET"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cargo-get"
	}
	return filepath.Join(home, ".cargo-get")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Delimiter: DefaultDelimiter,
		Manifest: ManifestConfig{
			Filename:      manifest.DefaultFilename,
			SearchParents: DefaultSearchParents,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
