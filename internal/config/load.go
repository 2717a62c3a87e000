package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the validated configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		Paths: PathsConfig{
			Output: ".",
		},
		Logging: LoggingConfig{
			Format: "text",
		},
	}
	// Validate only fills defaults here
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML config file and validates it. An empty path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
