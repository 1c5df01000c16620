// Package config provides configuration loading and management for ontopop.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/ontopop/export"
)

// Config represents the complete ontopop configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Dates  DatesConfig  `yaml:"dates"`
}

// InputConfig configures the survey input files.
type InputConfig struct {
	// Path is the input file path or doublestar glob pattern.
	Path string `yaml:"path"`
	// Delimiter is the field delimiter (default: ",").
	Delimiter string `yaml:"delimiter"`
}

// OutputConfig configures the serialized ontology output.
type OutputConfig struct {
	// Path is the output file path (overwritten if it exists).
	Path string `yaml:"path"`
	// Format is the serialization format: rdfxml, turtle, or ntriples.
	Format string `yaml:"format"`
}

// DatesConfig configures data_avaliacao handling.
type DatesConfig struct {
	// Strict treats unparseable evaluation dates as row errors instead of
	// substituting the processing date.
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path:      "",
			Delimiter: ",",
		},
		Output: OutputConfig{
			Path:   "ontology.owl",
			Format: string(export.FormatRDFXML),
		},
		Dates: DatesConfig{
			Strict: false,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path is required")
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("input.delimiter must be a single character")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	return nil
}

// DelimiterRune returns the input delimiter as a rune. Validate must have
// accepted the config first.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	return r
}

// LoadFromFile loads configuration from a YAML file, layered over defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Input.Path != "" {
		c.Input.Path = other.Input.Path
	}
	if other.Input.Delimiter != "" {
		c.Input.Delimiter = other.Input.Delimiter
	}

	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}

	if other.Dates.Strict {
		c.Dates.Strict = true
	}
}
