package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Interviewer string            `yaml:"interviewer"`
	EnvFile     string            `yaml:"env_file"`
	Paths       PathsConfig       `yaml:"paths"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Suffix string `yaml:"suffix"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"-"`
}

// Output formats understood by the writer package.
const (
	FormatText = "txt"
	FormatDocx = "docx"
)

func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	c.Output.Format = strings.ToLower(c.Output.Format)
	switch c.Output.Format {
	case "":
		c.Output.Format = FormatText
	case FormatText, FormatDocx:
	default:
		return fmt.Errorf("output.format %q is not one of %s, %s", c.Output.Format, FormatText, FormatDocx)
	}

	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Output.Suffix == "" {
		c.Output.Suffix = "_formatted"
	}
	if c.EnvFile == "" {
		c.EnvFile = ".env"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
