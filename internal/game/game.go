package game

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"go.uber.org/zap"

	"quizgame/internal/grade"
	"quizgame/internal/prompt"
	"quizgame/internal/question"
	"quizgame/internal/session"
	"quizgame/internal/ui"
)

const (
	welcomeMessage  = "Welcome to the Quiz Game!"
	farewellMessage = "Thank you for playing! Goodbye!"
)

// Options configures a game.
type Options struct {
	Bank question.Bank
	// DefaultCount is used when the player declines to choose or replies with an invalid count.
	DefaultCount int
	// Count skips the count prompt when positive.
	Count   int
	Shuffle bool
	Theme   ui.Theme
	Logger  *zap.Logger
	// Rand is optional; a randomly seeded source is used when nil.
	Rand *rand.Rand
}

// Round is the result of one play-through.
type Round struct {
	Outcome session.Outcome
	Grade   grade.Result
}

// Summary lists the completed rounds of a game.
type Summary struct {
	Rounds []Round
	// EndedBy is why the game stopped: Answered when the player declined to replay.
	EndedBy prompt.Kind
}

// Game drives greeting, sessions, results, and the replay prompt.
type Game struct {
	opts  Options
	input *prompt.Reader
	out   io.Writer
	log   *zap.Logger
}

// New builds a game reading player input from in.
func New(in io.Reader, out io.Writer, opts Options) (*Game, error) {
	if opts.Bank.Len() == 0 {
		return nil, question.ErrEmptyBank
	}
	if opts.DefaultCount <= 0 {
		opts.DefaultCount = question.DefaultCount
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{opts: opts, input: prompt.NewReader(in), out: out, log: log}, nil
}

// Play runs sessions until the player declines to continue or input ends.
// Closed or interrupted input is a normal exit, not an error.
func (g *Game) Play(ctx context.Context) (Summary, error) {
	var summary Summary
	fmt.Fprintf(g.out, "%s\n\n", g.opts.Theme.Heading(welcomeMessage))

	for {
		count, kind, err := g.chooseCount(ctx)
		if err != nil {
			return summary, err
		}
		if kind != prompt.Answered {
			return g.finish(summary, kind), nil
		}

		questions := session.Select(g.opts.Bank, session.Selection{Count: count, Shuffle: g.opts.Shuffle}, g.opts.Rand)
		s := session.New(questions)
		runner := session.Runner{Input: g.input, Out: g.out, Theme: g.opts.Theme, Logger: g.log}
		outcome, err := runner.Run(ctx, s)
		if err != nil {
			return summary, err
		}
		if outcome.Ended {
			return g.finish(summary, outcome.Reason), nil
		}

		result := grade.Grade(outcome.Score, outcome.Total)
		summary.Rounds = append(summary.Rounds, Round{Outcome: outcome, Grade: result})
		g.showResults(outcome, result)
		g.log.Info("round complete",
			zap.String("session_id", s.ID),
			zap.Int("score", outcome.Score),
			zap.Int("total", outcome.Total),
			zap.String("grade", string(result.Letter)),
		)

		again, kind, err := prompt.YesNo(ctx, g.input, g.out, "Do you wish to play again?")
		if err != nil {
			return summary, err
		}
		if kind != prompt.Answered {
			return g.finish(summary, kind), nil
		}
		if !again {
			return g.finish(summary, prompt.Answered), nil
		}
		fmt.Fprintln(g.out)
	}
}

// chooseCount negotiates how many questions the next session asks.
func (g *Game) chooseCount(ctx context.Context) (int, prompt.Kind, error) {
	bankLen := g.opts.Bank.Len()
	fallback := session.ClampCount(g.opts.DefaultCount, bankLen)
	if g.opts.Count > 0 {
		return session.ClampCount(g.opts.Count, bankLen), prompt.Answered, nil
	}

	choose, kind, err := prompt.YesNo(ctx, g.input, g.out, "Would you like to choose how many questions to answer?")
	if err != nil || kind != prompt.Answered {
		return 0, kind, err
	}
	if !choose {
		return fallback, prompt.Answered, nil
	}

	line, err := prompt.Ask(ctx, g.input, g.out, fmt.Sprintf("How many questions would you like (1-%d)? ", bankLen))
	if err != nil {
		return 0, prompt.Answered, err
	}
	if line.Ended() {
		return 0, line.Kind, nil
	}
	count, ok := session.ResolveCount(line.Text, bankLen, g.opts.DefaultCount)
	if !ok {
		fmt.Fprintln(g.out, g.opts.Theme.Muted(fmt.Sprintf("Invalid number. Using the default of %d questions.", count)))
	}
	fmt.Fprintln(g.out)
	return count, prompt.Answered, nil
}

// showResults prints the score, bar, and grade for a finished session.
func (g *Game) showResults(outcome session.Outcome, result grade.Result) {
	theme := g.opts.Theme
	fmt.Fprintf(g.out, "Quiz complete! Your final score is: %s\n", theme.Emphasis(fmt.Sprintf("%d/%d", outcome.Score, outcome.Total)))
	if result.Graded {
		fmt.Fprintf(g.out, "%s %s\n", theme.ScoreBar(result.Percentage/100), ui.Percent(result.Percentage))
	}
	fmt.Fprintf(g.out, "Grade: %s\n", theme.Emphasis(string(result.Letter)))
	fmt.Fprintf(g.out, "%s\n\n", result.Message)
}

// finish prints the farewell and records why the game ended.
func (g *Game) finish(summary Summary, kind prompt.Kind) Summary {
	if kind != prompt.Answered {
		fmt.Fprintln(g.out)
	}
	fmt.Fprintln(g.out, farewellMessage)
	summary.EndedBy = kind
	g.log.Debug("game finished", zap.Stringer("ended_by", kind), zap.Int("rounds", len(summary.Rounds)))
	return summary
}
