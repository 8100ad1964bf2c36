package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for a run with no flags.
const (
	DefaultInput     = "ConList.xlsx"
	DefaultOutput    = "ConList_cleaned.csv"
	DefaultHeaderRow = 1
)

// Output formats.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// Config holds all runtime configuration for a conclean run.
type Config struct {
	FilePath   string
	OutputPath string
	Sheet      string // empty selects the first worksheet
	HeaderRow  int    // zero-based physical row holding column names
	Format     string // "csv" or "parquet"
	LogFormat  string // "text" or "json"
	LogLevel   string
	SkipChecks bool
}

// Default returns a Config matching the no-flag behaviour.
func Default() Config {
	return Config{
		FilePath:   DefaultInput,
		OutputPath: DefaultOutput,
		HeaderRow:  DefaultHeaderRow,
		Format:     FormatCSV,
		LogFormat:  "text",
		LogLevel:   "info",
	}
}

// yamlConfig is the on-disk YAML structure. Unset keys leave Config untouched.
type yamlConfig struct {
	Input     *string `yaml:"input"`
	Output    *string `yaml:"output"`
	Sheet     *string `yaml:"sheet"`
	HeaderRow *int    `yaml:"header_row"`
	Format    *string `yaml:"format"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.Input != nil {
		c.FilePath = *yc.Input
	}
	if yc.Output != nil {
		c.OutputPath = *yc.Output
	}
	if yc.Sheet != nil {
		c.Sheet = *yc.Sheet
	}
	if yc.HeaderRow != nil {
		c.HeaderRow = *yc.HeaderRow
	}
	if yc.Format != nil {
		c.Format = *yc.Format
	}
	return c.validateOptions()
}

// validateOptions checks fields that do not touch the filesystem.
func (c *Config) validateOptions() error {
	switch c.Format {
	case FormatCSV, FormatParquet:
	default:
		return fmt.Errorf("unknown output format %q (want csv or parquet)", c.Format)
	}
	if c.HeaderRow < 0 {
		return fmt.Errorf("header row must be >= 0, got %d", c.HeaderRow)
	}
	return nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return c.validateOptions()
}

// ValidateWithOutput checks the input and that an output path is set.
func (c *Config) ValidateWithOutput() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return fmt.Errorf("--out is required")
	}
	return nil
}
