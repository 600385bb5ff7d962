package session

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"quizgame/internal/prompt"
	"quizgame/internal/ui"
)

// Runner asks a session's questions and scores the replies.
type Runner struct {
	Input  *prompt.Reader
	Out    io.Writer
	Theme  ui.Theme
	Logger *zap.Logger
}

// Run asks each question in order. It stops early when input is closed or
// interrupted and reports that through Outcome.Ended.
func (r Runner) Run(ctx context.Context, s *Session) (Outcome, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("session_id", s.ID))
	logger.Debug("session started", zap.Int("total", s.Total))

	for i, q := range s.Questions {
		fmt.Fprintf(r.Out, "%s\n%s\n", r.Theme.Muted(fmt.Sprintf("Question %d of %d:", i+1, s.Total)), q.Prompt)
		line, err := prompt.Ask(ctx, r.Input, r.Out, "> ")
		if err != nil {
			return Outcome{Score: s.Score, Total: s.Total}, fmt.Errorf("question %s: %w", q.ID, err)
		}
		if line.Ended() {
			fmt.Fprintln(r.Out)
			logger.Debug("session ended early", zap.Stringer("reason", line.Kind), zap.Int("answered", i))
			return Outcome{Score: s.Score, Total: s.Total, Ended: true, Reason: line.Kind}, nil
		}

		correct := q.Check(line.Text)
		s.record(correct)
		if correct {
			fmt.Fprintf(r.Out, "%s\n\n", r.Theme.Correct("Correct!"))
		} else {
			fmt.Fprintf(r.Out, "%s\n\n", r.Theme.Incorrect("Incorrect! The correct answer was: "+q.Canonical()))
		}
		logger.Debug("question answered",
			zap.String("question_id", q.ID),
			zap.Bool("correct", correct),
			zap.Int("score", s.Score),
		)
	}

	logger.Debug("session finished", zap.Int("score", s.Score), zap.Int("total", s.Total))
	return Outcome{Score: s.Score, Total: s.Total}, nil
}
