package question

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyBank indicates a bank with no questions was used to start a quiz.
var ErrEmptyBank = errors.New("question bank is empty")

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeBank trims whitespace, assigns missing ids, and validates a bank.
func NormalizeBank(bank Bank) (Bank, error) {
	collector := &issueCollector{}
	if bank.Version == 0 {
		collector.add("version", "is required")
	} else if bank.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", bank.Version))
	}
	if len(bank.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	normalized := Bank{Version: bank.Version, Questions: make([]Question, 0, len(bank.Questions))}
	seenIDs := map[string]struct{}{}
	for i, q := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q = q.clone()
		q.ID = strings.TrimSpace(q.ID)
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%d", i+1)
		}
		if _, exists := seenIDs[q.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", q.ID))
		} else {
			seenIDs[q.ID] = struct{}{}
		}

		q.Prompt = strings.TrimSpace(q.Prompt)
		if q.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		q.Answers = normalizeStringSlice(q.Answers)
		if len(q.Answers) == 0 {
			collector.add(prefix+".answers", "must include at least one entry")
		}
		for answerIndex, answer := range q.Answers {
			if answer == "" {
				collector.add(fmt.Sprintf("%s.answers[%d]", prefix, answerIndex), "is required")
			}
		}
		normalized.Questions = append(normalized.Questions, q)
	}

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return normalized, nil
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
