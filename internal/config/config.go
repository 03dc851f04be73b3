// Package config loads the pipeline configuration from a YAML file.
// Every setting can also be supplied or overridden by command-line
// flags; the commands merge flags on top of the loaded config.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the full pipeline configuration.
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Output  OutputConfig  `yaml:"output"`
	Load    LoadConfig    `yaml:"load"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourcesConfig points at the raw input files.
type SourcesConfig struct {
	Books     string `yaml:"books"`
	Borrowers string `yaml:"borrowers"`
}

// OutputConfig controls where the normalized CSVs are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoadConfig controls the bulk-load step.
type LoadConfig struct {
	BatchSize int `yaml:"batch_size" validate:"gte=1"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output:  OutputConfig{Dir: "output"},
		Load:    LoadConfig{BatchSize: 1000},
		Logging: LoggingConfig{Level: "info"},
	}
}

var validate = validator.New()

// Load reads path and merges it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints. Source paths are not required
// here because the commands accept them as flags instead.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
