package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// interruptContext is cancelled on SIGINT or SIGTERM. Tests replace it.
var interruptContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
