package config

import (
	"fmt"
	"os"
	"path/filepath"

	"quizgame/internal/strictdecode"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	cfg.BaseDir = filepath.Dir(path)
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a single YAML config document, rejecting unknown keys.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := strictdecode.YAML(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// QuestionsPath returns the absolute-or-relative path of the configured bank,
// or "" when the built-in bank should be used.
func (cfg Config) QuestionsPath() string {
	if cfg.QuestionsFile == "" {
		return ""
	}
	if filepath.IsAbs(cfg.QuestionsFile) || cfg.BaseDir == "" {
		return cfg.QuestionsFile
	}
	return filepath.Join(cfg.BaseDir, cfg.QuestionsFile)
}
