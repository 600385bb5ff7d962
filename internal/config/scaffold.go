package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"quizgame/internal/question"
)

const configHeader = "# quizgame settings. CLI flags override these values.\n"

// Scaffold writes a config file and a starter question bank next to it.
// Existing files are never overwritten.
func Scaffold(configPath string, cfg Config) (string, error) {
	dir := filepath.Dir(configPath)
	if cfg.QuestionsFile == "" {
		cfg.QuestionsFile = QuestionsFileName
	}
	questionsPath := cfg.QuestionsFile
	if !filepath.IsAbs(questionsPath) {
		questionsPath = filepath.Join(dir, questionsPath)
	}
	for _, path := range []string{configPath, questionsPath} {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("file already exists at %q", path)
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat %q: %w", path, err)
		}
	}

	Normalize(&cfg)
	cfgData, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	bankData, err := question.EncodeYAML(question.Default())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(questionsPath), 0o755); err != nil {
		return "", fmt.Errorf("create questions dir: %w", err)
	}
	if err := os.WriteFile(configPath, append([]byte(configHeader), cfgData...), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	if err := os.WriteFile(questionsPath, bankData, 0o644); err != nil {
		return "", fmt.Errorf("write questions: %w", err)
	}
	return questionsPath, nil
}
