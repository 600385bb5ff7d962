//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"
)

// theExitCodeIs asserts the CLI exit code.
func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

// theOutputContains asserts stdout includes text.
func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

// theOutputDoesNotContain asserts stdout excludes text.
func (s *featureState) theOutputDoesNotContain(text string) error {
	if strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("did not expect %q in output", text)
	}
	return nil
}

// thePromptAppears asserts how often a line was printed.
func (s *featureState) thePromptAppears(text string, times int) error {
	if got := strings.Count(s.stdout.String(), text); got != times {
		return fmt.Errorf("expected %q %d times, got %d", text, times, got)
	}
	return nil
}
