// Package config loads the extractor's optional YAML configuration and
// provides defaults for everything the CLI does not override.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Valid output formats, in the order they are reported in errors.
var formats = []string{"json", "csv"}

// Config holds runtime settings for the extractor.
type Config struct {
	// OutputFormat selects the exporter: "json" or "csv".
	OutputFormat string `yaml:"output_format"`

	// OutputPath is the default export path. Empty means next to the input.
	OutputPath string `yaml:"output_path"`

	// BatchGlob matches the files picked up in batch mode, e.g. "*.pdf".
	BatchGlob string `yaml:"batch_glob"`

	// Concurrency bounds how many PDFs batch mode parses at once.
	Concurrency int `yaml:"concurrency"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		OutputFormat: "json",
		BatchGlob:    "*.pdf",
		Concurrency:  4,
		LogLevel:     "info",
	}
}

// Load reads and parses a YAML configuration file. Settings missing from the
// file keep their defaults.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file %q: %w", filename, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %q: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the extractor cannot run with.
func (c *Config) Validate() error {
	valid := false
	for _, f := range formats {
		if c.OutputFormat == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid output_format %q: must be one of %v", c.OutputFormat, formats)
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("invalid concurrency %d: must be at least 1", c.Concurrency)
	}
	if c.BatchGlob == "" {
		return fmt.Errorf("batch_glob must not be empty")
	}
	return nil
}
