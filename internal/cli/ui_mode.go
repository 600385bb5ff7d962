package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"quizgame/internal/config"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveColor determines whether to style output for a color mode.
func resolveColor(mode string, stdout io.Writer) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = config.ColorAuto
	}
	switch normalized {
	case config.ColorAuto:
		return isTerminal(stdout), nil
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	default:
		return false, fmt.Errorf("invalid color mode %q (expected auto|always|never)", mode)
	}
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
