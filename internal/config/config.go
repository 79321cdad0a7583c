// Package config loads configuration for the testtools CLI: an optional
// testtools.yaml file overridden by TESTTOOLS_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the base path.
const FileName = "testtools.yaml"

// Default values for Config.
const (
	DefaultLogLevel  = "warning"
	DefaultScenePath = "Verify/Smoke"
)

// Config drives the testtools CLI.
type Config struct {
	// AssetDir roots the scratch asset database the verify command runs
	// against. Empty means a fresh temporary directory per run.
	AssetDir string `yaml:"asset_dir" env:"TESTTOOLS_ASSET_DIR"`

	// LogLevel is a logrus level name (debug, info, warning, error).
	LogLevel string `yaml:"log_level" env:"TESTTOOLS_LOG_LEVEL"`

	// ScenePath is the raw scene path the verify command persists through;
	// it is normalized the same way fixtures normalize their paths.
	ScenePath string `yaml:"scene_path" env:"TESTTOOLS_SCENE_PATH"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		ScenePath: DefaultScenePath,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Load reads testtools.yaml from basePath, falls back to defaults when the
// file is absent, then applies environment overrides.
func Load(basePath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(basePath, FileName))
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values; it does not touch the filesystem.
func Validate(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("unknown level %q", cfg.LogLevel),
		}
	}
	return nil
}

// Level returns the parsed logrus level. Call Validate first; unknown
// levels degrade to warning here.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
