// Package config loads the explorer helper configuration from a YAML
// file, applying struct-tag defaults and validating the result.
package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	QR      QRConfig      `yaml:"qr"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// QRConfig contains QR rendering settings
type QRConfig struct {
	Size int `yaml:"size" default:"256" validate:"gt=0"`
}

// Load loads configuration from file. A missing file is not an error:
// the defaults apply.
func Load(configPath string) (*Config, error) {
	var config Config
	if err := defaults.Set(&config); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// fall through with defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}
