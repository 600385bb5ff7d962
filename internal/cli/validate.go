package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		questionsPath := flags.String("questions", "", "Path to a YAML or JSON question bank")
		configPath := flags.String("config", "", "Path to config file (default: search for .quizgame/config.yml)")
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
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		if loaded.configPath != "" {
			fmt.Fprintf(stdout, "Config OK (%s)\n", loaded.configPath)
		}
		fmt.Fprintf(stdout, "Questions OK (%d questions from %s)\n", loaded.bank.Len(), loaded.bankSource)
		return ExitOK
	}
}
