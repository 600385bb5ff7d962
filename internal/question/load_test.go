package question

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadBankYAML verifies YAML banks load and normalize properly.
func TestLoadBankYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.yml")
	payload := `version: 1
questions:
  - id: q1
    question: "  What is 2 + 2? "
    answers: [" 4 ", "four"]
  - question: "Capital of France?"
    answers: ["Paris"]
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	bank, err := LoadBank(path)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if bank.Len() != 2 {
		t.Fatalf("expected 2 questions, got %d", bank.Len())
	}
	q := bank.Questions[0]
	if q.ID != "q1" {
		t.Fatalf("expected id q1, got %q", q.ID)
	}
	if q.Prompt != "What is 2 + 2?" {
		t.Fatalf("expected trimmed prompt, got %q", q.Prompt)
	}
	if q.Canonical() != "4" {
		t.Fatalf("expected canonical answer 4, got %q", q.Canonical())
	}
	if bank.Questions[1].ID != "q2" {
		t.Fatalf("expected generated id q2, got %q", bank.Questions[1].ID)
	}
}

// TestLoadBankJSON verifies JSON banks are parsed and validated.
func TestLoadBankJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.json")
	payload := `{
  "version": 1,
  "questions": [
    {"id": "color", "question": "Which color is the sky?", "answers": ["blue"]}
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	bank, err := LoadBank(path)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if bank.Len() != 1 || bank.Questions[0].ID != "color" {
		t.Fatalf("unexpected bank: %+v", bank.Questions)
	}
}

// TestLoadBankRejectsUnknownFields verifies strict decoding.
func TestLoadBankRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.yml")
	payload := `version: 1
questions:
  - question: "Q"
    answers: ["a"]
    hint: "nope"
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	if _, err := LoadBank(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

// TestLoadBankValidationErrors verifies invalid banks return validation errors.
func TestLoadBankValidationErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.yml")
	payload := `version: 1
questions:
  - id: dup
    question: "Q1"
    answers: []
  - id: dup
    question: " "
    answers: ["a", " "]
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	_, err := LoadBank(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 4 {
		t.Fatalf("expected 4 issues, got %+v", validationErr.Issues)
	}
}

// TestEncodeYAMLRoundTrip verifies scaffolded banks load back.
func TestEncodeYAMLRoundTrip(t *testing.T) {
	data, err := EncodeYAML(Default())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "questions.yml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	bank, err := LoadBank(path)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if bank.Len() != Default().Len() {
		t.Fatalf("expected %d questions, got %d", Default().Len(), bank.Len())
	}
}
