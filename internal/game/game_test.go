package game

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"quizgame/internal/grade"
	"quizgame/internal/prompt"
	"quizgame/internal/question"
	"quizgame/internal/testutil"
	"quizgame/internal/ui"
)

// uniformBank returns n questions that all accept "a".
func uniformBank(n int) question.Bank {
	bank := question.Bank{Version: 1}
	for i := 0; i < n; i++ {
		bank.Questions = append(bank.Questions, question.Question{
			ID:      fmt.Sprintf("q%d", i+1),
			Prompt:  fmt.Sprintf("Question number %d?", i+1),
			Answers: []string{"a"},
		})
	}
	return bank
}

func play(t *testing.T, opts Options, input string) (Summary, string) {
	t.Helper()
	opts.Theme = ui.NewTheme(false)
	var out bytes.Buffer
	g, err := New(strings.NewReader(input), &out, opts)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	summary, err := g.Play(testutil.Context(t))
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	return summary, out.String()
}

func TestPlayPerfectSession(t *testing.T) {
	bank := question.Default()
	bank.Questions = bank.Questions[:5]
	var input strings.Builder
	input.WriteString("no\n")
	for _, q := range bank.Questions {
		input.WriteString(strings.ToUpper(q.Canonical()) + "\n")
	}
	input.WriteString("no\n")

	summary, output := play(t, Options{Bank: bank}, input.String())
	if !strings.HasPrefix(output, welcomeMessage) {
		t.Fatalf("expected greeting, got %q", output)
	}
	if len(summary.Rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(summary.Rounds))
	}
	round := summary.Rounds[0]
	if round.Outcome.Score != 5 || round.Outcome.Total != 5 {
		t.Fatalf("expected 5/5, got %+v", round.Outcome)
	}
	if round.Grade.Letter != grade.LetterA {
		t.Fatalf("expected grade A, got %s", round.Grade.Letter)
	}
	for _, want := range []string{"Your final score is: 5/5", "Grade: A", round.Grade.Message, farewellMessage} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got %q", want, output)
		}
	}
	if summary.EndedBy != prompt.Answered {
		t.Fatalf("expected player decline, got %v", summary.EndedBy)
	}
}

func TestPlayInvalidCountFallsBackToDefault(t *testing.T) {
	bank := uniformBank(8)
	input := "yes\nabc\n" + strings.Repeat("a\n", 5) + "no\n"
	summary, output := play(t, Options{Bank: bank}, input)
	if !strings.Contains(output, "Invalid number. Using the default of 5 questions.") {
		t.Fatalf("expected fallback message, got %q", output)
	}
	if len(summary.Rounds) != 1 || summary.Rounds[0].Outcome.Total != 5 {
		t.Fatalf("expected one round of 5, got %+v", summary.Rounds)
	}
	if summary.Rounds[0].Outcome.Score != 5 {
		t.Fatalf("expected 5 correct, got %d", summary.Rounds[0].Outcome.Score)
	}
}

func TestPlayChosenCount(t *testing.T) {
	bank := uniformBank(8)
	input := "y\n3\n" + "a\nb\na\n" + "n\n"
	summary, output := play(t, Options{Bank: bank, Shuffle: true}, input)
	if len(summary.Rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(summary.Rounds))
	}
	outcome := summary.Rounds[0].Outcome
	if outcome.Score != 2 || outcome.Total != 3 {
		t.Fatalf("expected 2/3, got %+v", outcome)
	}
	if !strings.Contains(output, "Your final score is: 2/3") {
		t.Fatalf("expected score line, got %q", output)
	}
	if !strings.Contains(output, "Question 3 of 3:") || strings.Contains(output, "Question 4 of") {
		t.Fatalf("expected exactly three questions, got %q", output)
	}
}

func TestPlayCountOptionSkipsNegotiation(t *testing.T) {
	bank := uniformBank(8)
	summary, output := play(t, Options{Bank: bank, Count: 2}, "a\na\nno\n")
	if strings.Contains(output, "choose how many") {
		t.Fatalf("expected no count prompt, got %q", output)
	}
	if len(summary.Rounds) != 1 || summary.Rounds[0].Outcome.Total != 2 {
		t.Fatalf("unexpected rounds %+v", summary.Rounds)
	}
}

func TestPlayReplay(t *testing.T) {
	bank := uniformBank(2)
	input := "no\na\na\nmaybe\nyes\nno\nb\nb\nnope\n"
	summary, output := play(t, Options{Bank: bank}, input)
	if len(summary.Rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(summary.Rounds))
	}
	if summary.Rounds[0].Grade.Letter != grade.LetterA || summary.Rounds[1].Grade.Letter != grade.LetterF {
		t.Fatalf("unexpected grades %+v", summary.Rounds)
	}
	if strings.Count(output, welcomeMessage) != 1 {
		t.Fatalf("expected a single greeting, got %q", output)
	}
	if !strings.Contains(output, "Please answer yes or no.") {
		t.Fatalf("expected re-prompt, got %q", output)
	}
}

func TestPlayInputClosedMidSession(t *testing.T) {
	bank := uniformBank(4)
	summary, output := play(t, Options{Bank: bank}, "no\na\n")
	if len(summary.Rounds) != 0 {
		t.Fatalf("expected no completed rounds, got %+v", summary.Rounds)
	}
	if summary.EndedBy != prompt.StreamClosed {
		t.Fatalf("expected stream closed, got %v", summary.EndedBy)
	}
	if !strings.HasSuffix(output, farewellMessage+"\n") {
		t.Fatalf("expected farewell, got %q", output)
	}
	if strings.Contains(output, "Quiz complete") {
		t.Fatalf("expected no results, got %q", output)
	}
}

func TestPlayInputClosedAtFirstPrompt(t *testing.T) {
	summary, output := play(t, Options{Bank: uniformBank(3)}, "")
	if summary.EndedBy != prompt.StreamClosed {
		t.Fatalf("expected stream closed, got %v", summary.EndedBy)
	}
	if !strings.Contains(output, farewellMessage) {
		t.Fatalf("expected farewell, got %q", output)
	}
}

func TestPlayInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(testutil.Context(t))
	var out bytes.Buffer
	g, err := New(testutil.BlockingInput(t), &out, Options{Bank: uniformBank(3), Theme: ui.NewTheme(false)})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	summary, err := g.Play(ctx)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if summary.EndedBy != prompt.Interrupted {
		t.Fatalf("expected interrupted, got %v", summary.EndedBy)
	}
	if !strings.Contains(out.String(), farewellMessage) {
		t.Fatalf("expected farewell, got %q", out.String())
	}
}

func TestNewRejectsEmptyBank(t *testing.T) {
	_, err := New(strings.NewReader(""), &bytes.Buffer{}, Options{})
	if !errors.Is(err, question.ErrEmptyBank) {
		t.Fatalf("expected empty bank error, got %v", err)
	}
}
