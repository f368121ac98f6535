package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load parses the embedded constants table. If the embedded document is
// unusable it returns the hard-coded copy together with the parse error.
func Load() (SnakeConfig, error) {
	return load(defaultSnakeYAML)
}

func load(data []byte) (SnakeConfig, error) {
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("using built-in constants: %w", err)
	}
	return cfg, nil
}

// Parse decodes and validates a constants document.
func Parse(data []byte) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse constants: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders a constants table as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode constants: %w", err)
	}
	return data, nil
}
