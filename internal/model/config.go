package model

import (
	"fmt"
	"os"
	"path/filepath"

	yamlv3 "gopkg.in/yaml.v3"
)

type Config struct {
	StateDir string      `yaml:"state_dir"`
	Locale   string      `yaml:"locale"`
	Audit    AuditConfig `yaml:"audit"`
}

type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".t2wizard")
	return Config{
		StateDir: dir,
		Locale:   "en-CA",
		Audit: AuditConfig{
			Enabled: true,
			Path:    filepath.Join(dir, "logs", "t2wizard.jsonl"),
		},
	}
}

// LoadConfig reads an optional YAML config file, layering it over defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yamlv3.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
