// Package models defines data structures for configuration and parsing.
package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTop          = 26
	OutputFormatYAML    = "yaml"
	OutputFormatJSON    = "json"
	DefaultOutputFormat = OutputFormatYAML
)

// DefaultLanguages restricts language detection when none are configured.
var DefaultLanguages = []string{"en", "fr", "de", "es", "it", "pt"}

// Config holds runtime configuration for a count run. Values come from an
// optional YAML file and are overridden by CLI flags.
type Config struct {
	WorkerCount    int         `yaml:"worker_count"`
	Top            int         `yaml:"top"`
	InputFormat    InputFormat `yaml:"input_format"`
	OutputFormat   string      `yaml:"output_format"`
	DetectLanguage bool        `yaml:"detect_language"`
	Languages      []string    `yaml:"languages,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		WorkerCount:  runtime.NumCPU(),
		Top:          DefaultTop,
		InputFormat:  InputFormatText,
		OutputFormat: DefaultOutputFormat,
		Languages:    append([]string(nil), DefaultLanguages...),
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate normalizes and checks every field.
func (c *Config) Validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("worker_count must be at least 1, got %d", c.WorkerCount)
	}
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", c.Top)
	}

	format, err := ParseInputFormat(string(c.InputFormat))
	if err != nil {
		return err
	}
	c.InputFormat = format

	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	switch c.OutputFormat {
	case "":
		c.OutputFormat = DefaultOutputFormat
	case OutputFormatYAML, OutputFormatJSON:
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", c.OutputFormat)
	}

	if len(c.Languages) == 0 {
		c.Languages = append([]string(nil), DefaultLanguages...)
	}
	return nil
}
