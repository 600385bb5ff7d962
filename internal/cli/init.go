package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizgame/internal/config"
	"quizgame/internal/prompt"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dirFlag := flags.String("dir", "", "Directory to create .quizgame in (default: current directory)")
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

		baseDir := strings.TrimSpace(*dirFlag)
		if baseDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			baseDir = wd
		}
		baseDir, err := filepath.Abs(baseDir)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		configPath := config.ConfigPath(baseDir)
		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", configPath)
			return ExitError
		}

		ctx, stop := interruptContext()
		defer stop()
		reader := prompt.NewReader(Input)
		confirm, kind, err := prompt.YesNo(ctx, reader, stdout, fmt.Sprintf("Initialize quizgame config in %s?", config.ConfigDir(baseDir)))
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if kind != prompt.Answered || !confirm {
			fmt.Fprintln(stderr, "Init cancelled.")
			return ExitError
		}

		cfg := config.Defaults()
		shuffle, kind, err := prompt.YesNo(ctx, reader, stdout, "Shuffle questions each round?")
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if kind != prompt.Answered {
			fmt.Fprintln(stderr, "Init cancelled.")
			return ExitError
		}
		cfg.Shuffle = &shuffle

		questionsPath, err := config.Scaffold(configPath, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", configPath)
		fmt.Fprintf(stdout, "Wrote %s\n", questionsPath)
		return ExitOK
	}
}
