//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"quizgame/internal/cli"
	"quizgame/internal/question"
)

// aQuestionBank writes a bank file from a question/answers table.
func (s *featureState) aQuestionBank(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("question bank table needs a header and at least one row")
	}
	bank := question.Bank{Version: 1}
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected 2 cells per row, got %d", len(row.Cells))
		}
		var answers []string
		for _, answer := range strings.Split(row.Cells[1].Value, ",") {
			answers = append(answers, strings.TrimSpace(answer))
		}
		bank.Questions = append(bank.Questions, question.Question{
			Prompt:  strings.TrimSpace(row.Cells[0].Value),
			Answers: answers,
		})
	}
	data, err := question.EncodeYAML(bank)
	if err != nil {
		return err
	}
	s.bankPath = filepath.Join(s.workDir, "questions.yml")
	if err := os.WriteFile(s.bankPath, data, 0o644); err != nil {
		return fmt.Errorf("write bank: %w", err)
	}
	return nil
}

// thePlayerTypes records the lines fed to stdin.
func (s *featureState) thePlayerTypes(doc *godog.DocString) error {
	s.input = doc.Content + "\n"
	return nil
}

// iRunCommand executes a CLI command for the scenario against the scenario bank.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "quizgame" {
		args = args[1:]
	}
	if s.bankPath != "" {
		args = append(args, "--questions", s.bankPath)
	}
	if len(args) > 0 && args[0] == "play" {
		args = append(args, "--color", "never")
	}
	cli.Input = strings.NewReader(s.input)
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}
