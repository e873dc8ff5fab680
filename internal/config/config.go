package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dse/emacs-custom-faces-file/internal/template"
)

type Config struct {
	CustomFile  string        `yaml:"custom-file" mapstructure:"custom-file"`
	FaceFile    string        `yaml:"face-file,omitempty" mapstructure:"face-file"`
	DisplayKind string        `yaml:"display-kind,omitempty" mapstructure:"display-kind"`
	Logging     LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
}

type LoggingConfig struct {
	Path       string `yaml:"path,omitempty" mapstructure:"path"`
	Level      string `yaml:"level,omitempty" mapstructure:"level"`
	MaxSize    int    `yaml:"max-size,omitempty" mapstructure:"max-size"`
	MaxBackups int    `yaml:"max-backups,omitempty" mapstructure:"max-backups"`
	MaxAge     int    `yaml:"max-age,omitempty" mapstructure:"max-age"`
}

func Load(path string) (*Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigFile(path)

	if err := viperInstance.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")

	if err := viperInstance.ReadConfig(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate performs comprehensive config validation
func (c *Config) Validate() error {
	if c.CustomFile == "" {
		return errors.New("custom-file is required and cannot be empty")
	}

	// An empty face-file means face settings stay in the custom file.
	if c.FaceFile != "" {
		if err := template.Validate(c.FaceFile); err != nil {
			return fmt.Errorf("invalid face-file template '%s': %w", c.FaceFile, err)
		}
	}

	if c.Logging.Level != "" {
		validLevels := []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}
		isValid := false
		for _, level := range validLevels {
			if c.Logging.Level == level {
				isValid = true
				break
			}
		}
		if !isValid {
			return fmt.Errorf("invalid log level '%s': must be one of: %s",
				c.Logging.Level, strings.Join(validLevels, ", "))
		}
	}

	return nil
}

// SplitFacesEnabled reports whether face settings are redirected to a
// separate file.
func (c *Config) SplitFacesEnabled() bool {
	return c.FaceFile != ""
}
