package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file and merges it over the defaults. A missing
// file is not an error; the defaults are returned. An empty path skips the
// file entirely.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return &cfg, nil
			}
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides lets the environment override file values, which keeps
// container deployments configurable without editing the file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("REAGENT_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("REAGENT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("REAGENT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
