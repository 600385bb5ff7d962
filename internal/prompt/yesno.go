package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"
)

var (
	affirmative = map[string]struct{}{"yes": {}, "y": {}, "1": {}, "true": {}, "yep": {}, "yeah": {}}
	negative    = map[string]struct{}{"no": {}, "n": {}, "0": {}, "false": {}, "nope": {}}
)

// ParseYesNo interprets a yes/no reply. ok is false for unrecognized input.
func ParseYesNo(reply string) (value, ok bool) {
	normalized := strings.ToLower(strings.TrimSpace(reply))
	if _, found := affirmative[normalized]; found {
		return true, true
	}
	if _, found := negative[normalized]; found {
		return false, true
	}
	return false, false
}

// YesNo asks a yes/no question until it gets a recognized reply or the input ends.
func YesNo(ctx context.Context, reader *Reader, out io.Writer, label string) (bool, Kind, error) {
	for {
		fmt.Fprintf(out, "%s (yes/no): ", label)
		line, err := reader.ReadLine(ctx)
		if err != nil {
			return false, Answered, err
		}
		if line.Ended() {
			return false, line.Kind, nil
		}
		if value, ok := ParseYesNo(line.Text); ok {
			return value, Answered, nil
		}
		fmt.Fprintln(out, "Please answer yes or no.")
	}
}

// Ask prints a label and reads one reply.
func Ask(ctx context.Context, reader *Reader, out io.Writer, label string) (Line, error) {
	fmt.Fprint(out, label)
	return reader.ReadLine(ctx)
}
