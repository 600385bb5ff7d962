package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quizgame/internal/ui"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		questionsPath := flags.String("questions", "", "Path to a YAML or JSON question bank")
		configPath := flags.String("config", "", "Path to config file (default: search for .quizgame/config.yml)")
		colorMode := flags.String("color", "", "Color output: auto|always|never")
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

		loaded, err := loadSettings(*configPath, *questionsPath)
		if err != nil {
			fmt.Fprintf(stderr, "List failed:\n%s\n", err.Error())
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

		rows := make([][]string, 0, loaded.bank.Len())
		for _, q := range loaded.bank.Questions {
			rows = append(rows, []string{q.ID, q.Prompt, q.Canonical(), strings.Join(q.Answers[1:], ", ")})
		}
		fmt.Fprintln(stdout, ui.NewTheme(color).Table([]string{"ID", "QUESTION", "ANSWER", "ALSO ACCEPTED"}, rows))
		fmt.Fprintf(stdout, "\n%d questions from %s\n", loaded.bank.Len(), loaded.bankSource)
		return ExitOK
	}
}
