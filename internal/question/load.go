package question

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"quizgame/internal/strictdecode"
)

// LoadBank reads, parses, and validates a question bank file.
func LoadBank(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("read question bank: %w", err)
	}
	bank, err := parseBank(data, path)
	if err != nil {
		return Bank{}, err
	}
	return NormalizeBank(bank)
}

// EncodeYAML renders a bank in the YAML layout accepted by LoadBank.
func EncodeYAML(bank Bank) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(bank); err != nil {
		return nil, fmt.Errorf("encode question bank: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode question bank: %w", err)
	}
	return buf.Bytes(), nil
}

func parseBank(data []byte, path string) (Bank, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONBank(data)
	}
	return parseYAMLBank(data)
}

func parseJSONBank(data []byte) (Bank, error) {
	var bank Bank
	if err := strictdecode.JSON(data, &bank); err != nil {
		return Bank{}, fmt.Errorf("parse json: %w", err)
	}
	return bank, nil
}

func parseYAMLBank(data []byte) (Bank, error) {
	var bank Bank
	if err := strictdecode.YAML(data, &bank); err != nil {
		return Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	return bank, nil
}
