package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"quizgame/internal/game"
	"quizgame/internal/logger"
	"quizgame/internal/ui"
)

const unexpectedFailureMessage = "Something went wrong and the quiz had to stop. Please try again."

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) (code int) {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		questionsPath := flags.String("questions", "", "Path to a YAML or JSON question bank (default: config or built-in)")
		count := flags.Int("count", 0, "Number of questions to ask (skips the count prompt)")
		noShuffle := flags.Bool("no-shuffle", false, "Ask questions in bank order")
		colorMode := flags.String("color", "", "Color output: auto|always|never")
		configPath := flags.String("config", "", "Path to config file (default: search for .quizgame/config.yml)")
		verbose := flags.Bool("verbose", false, "Write diagnostic logs to stderr")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *count < 0 {
			fmt.Fprintln(stderr, "invalid arguments: --count must be >= 0")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		log := logger.New(*verbose, stderr)
		defer func() { _ = log.Sync() }()

		loaded, err := loadSettings(*configPath, *questionsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Cannot start quiz:\n%v\n", err)
			return ExitError
		}
		mode := loaded.cfg.Color
		if strings.TrimSpace(*colorMode) != "" {
			mode = *colorMode
		}
		color, err := resolveColor(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		log.Debug("settings resolved",
			zap.String("config", loaded.configPath),
			zap.String("questions", loaded.bankSource),
			zap.Int("bank_size", loaded.bank.Len()),
			zap.Bool("color", color),
		)

		ctx, stop := interruptContext()
		defer stop()

		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("quiz panicked", zap.Any("panic", recovered))
				fmt.Fprintln(stderr, unexpectedFailureMessage)
				code = ExitError
			}
		}()

		g, err := game.New(Input, stdout, game.Options{
			Bank:         loaded.bank,
			DefaultCount: loaded.cfg.DefaultCount,
			Count:        *count,
			Shuffle:      loaded.cfg.ShuffleEnabled() && !*noShuffle,
			Theme:        ui.NewTheme(color),
			Logger:       log,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Cannot start quiz: %v\n", err)
			return ExitError
		}
		if _, err := g.Play(ctx); err != nil {
			log.Error("quiz failed", zap.Error(err))
			fmt.Fprintln(stderr, unexpectedFailureMessage)
			return ExitError
		}
		return ExitOK
	}
}
