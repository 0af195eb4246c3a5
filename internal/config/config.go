// Package config loads the optional rcronic YAML file and merges layered
// settings for the webhook and upload integrations.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the variable holding the default config file path.
const EnvConfig = "RCRONIC_CONFIG"

// Config holds file-level defaults. Command-line flags override every field.
type Config struct {
	Logfile     string         `yaml:"logfile"`
	Stderr      bool           `yaml:"stderr"`
	Shell       string         `yaml:"shell"`
	AlertPolicy string         `yaml:"alert_policy"` // flag or stderr-output
	Summary     bool           `yaml:"summary"`
	Verbose     bool           `yaml:"verbose"`
	Webhook     map[string]any `yaml:"webhook"`
	Upload      map[string]any `yaml:"upload"` // provider plus provider settings
}

// Load reads the config file at path. An empty path falls back to
// $RCRONIC_CONFIG; when neither is set a zero Config is returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
