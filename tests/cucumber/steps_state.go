//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/cucumber/godog"

	"quizgame/internal/cli"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	workDir       string
	bankPath      string
	input         string
	previousInput io.Reader
	stdout        bytes.Buffer
	stderr        bytes.Buffer
	exitCode      int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a question bank:$`, state.aQuestionBank)
	ctx.Step(`^the player types:$`, state.thePlayerTypes)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the output does not contain "([^"]*)"$`, state.theOutputDoesNotContain)
	ctx.Step(`^the prompt "([^"]*)" appears (\d+) times$`, state.thePromptAppears)
}

// reset clears buffers and creates a scratch directory before each scenario.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.input = ""
	s.bankPath = ""
	s.previousInput = cli.Input
	dir, err := os.MkdirTemp("", "quizgame-feature-")
	if err != nil {
		return err
	}
	s.workDir = dir
	return nil
}

// cleanup restores stdin and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousInput != nil {
		cli.Input = s.previousInput
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}
