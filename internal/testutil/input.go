package testutil

import (
	"io"
	"strings"
	"testing"
)

// Lines joins replies into newline-terminated player input.
func Lines(replies ...string) io.Reader {
	if len(replies) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(replies, "\n") + "\n")
}

// BlockingInput returns a reader that never yields data until the test ends,
// like a terminal waiting on a player who has not typed anything.
func BlockingInput(t testing.TB) io.Reader {
	t.Helper()
	reader, writer := io.Pipe()
	t.Cleanup(func() {
		_ = writer.Close()
	})
	return reader
}
