package config

import (
	_ "embed"
	"encoding/json"
)

// DefaultConfigJSON is the embedded baseline configuration. It mirrors
// DefaultConfig() and is used when no config file is discovered.
//
//go:embed default_config.json
var DefaultConfigJSON string

// LoadDefaultConfig parses the embedded baseline configuration
func LoadDefaultConfig() (*Config, error) {
	var cfg Config
	if err := json.Unmarshal([]byte(DefaultConfigJSON), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
