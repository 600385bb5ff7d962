package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds how long a test waits on player input.
const DefaultTimeout = 5 * time.Second

// Context returns a context that is cancelled when the test ends or the
// timeout elapses, so a stuck read fails the test instead of hanging it.
func Context(t testing.TB) context.Context {
	t.Helper()
	timeout := DefaultTimeout
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
