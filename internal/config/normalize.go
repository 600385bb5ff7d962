package config

import (
	"strings"

	"quizgame/internal/question"
)

// Defaults returns the settings used when no config file exists.
func Defaults() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize fills unset fields with defaults.
func Normalize(cfg *Config) {
	cfg.QuestionsFile = strings.TrimSpace(cfg.QuestionsFile)
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if cfg.DefaultCount == 0 {
		cfg.DefaultCount = question.DefaultCount
	}
}
