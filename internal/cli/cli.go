package cli

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Input is where interactive commands read player replies. Tests replace it.
var Input io.Reader = os.Stdin

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches to a subcommand. With no arguments, or with flags only, it plays a game.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || (isFlag(args[0]) && !isHelpArg(args[0])) {
		return findCommand("play").Run(args, stdout, stderr)
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizgame [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nWithout a command, quizgame runs \"play\".")
	fmt.Fprintln(w, "Use \"quizgame <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("play", "Play the trivia quiz", []string{
		"quizgame play [--questions <path>] [--count N] [--no-shuffle] [--color auto|always|never] [--config <path>] [--verbose]",
	}, runPlay),
	command("validate", "Validate the question bank and config", []string{
		"quizgame validate [--questions <path>] [--config <path>]",
	}, runValidate),
	command("list", "List the questions in the bank", []string{
		"quizgame list [--questions <path>] [--config <path>] [--color auto|always|never]",
	}, runList),
	command("init", "Scaffold .quizgame/config.yml and a question bank", []string{
		"quizgame init [--dir <path>]",
	}, runInit),
}
