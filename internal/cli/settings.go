package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"quizgame/internal/config"
	"quizgame/internal/question"
)

// settings is the resolved config plus the question bank it points at.
type settings struct {
	cfg        config.Config
	configPath string
	bank       question.Bank
	// bankSource names where the bank came from, for messages.
	bankSource string
}

// loadSettings resolves config and bank. An explicit questions path wins over the config file.
func loadSettings(configFlag, questionsFlag string) (settings, error) {
	configPath := strings.TrimSpace(configFlag)
	if configPath != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return settings{}, fmt.Errorf("resolve config path: %w", err)
		}
		configPath = abs
	}
	cfg, foundPath, err := config.Resolve(configPath, "")
	if err != nil {
		return settings{}, err
	}
	out := settings{cfg: cfg, configPath: foundPath}

	bankPath := strings.TrimSpace(questionsFlag)
	if bankPath == "" {
		bankPath = cfg.QuestionsPath()
	}
	if bankPath == "" {
		out.bank = question.Default()
		out.bankSource = "built-in questions"
		return out, nil
	}
	bank, err := question.LoadBank(bankPath)
	if err != nil {
		return settings{}, err
	}
	out.bank = bank
	out.bankSource = bankPath
	return out, nil
}
