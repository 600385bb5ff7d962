package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Kind classifies the result of reading one line of player input.
type Kind int

const (
	// Answered means a line was read.
	Answered Kind = iota
	// StreamClosed means the input reached EOF.
	StreamClosed
	// Interrupted means the read was cancelled, usually by SIGINT.
	Interrupted
)

// String returns a short label for logs.
func (k Kind) String() string {
	switch k {
	case Answered:
		return "answered"
	case StreamClosed:
		return "stream_closed"
	case Interrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Line is one read from the player.
type Line struct {
	Kind Kind
	Text string
}

// Ended reports whether the player can no longer answer.
func (l Line) Ended() bool {
	return l.Kind != Answered
}

type readResult struct {
	text string
	err  error
}

// Reader reads lines from an input stream and honours context cancellation.
// A background goroutine owns the underlying reader so a blocked read does not
// prevent an interrupt from being observed.
type Reader struct {
	src    *bufio.Reader
	lines  chan readResult
	start  sync.Once
	closed bool
}

// NewReader wraps an input stream.
func NewReader(in io.Reader) *Reader {
	return &Reader{
		src:   bufio.NewReader(in),
		lines: make(chan readResult),
	}
}

// ReadLine returns the next line with line endings trimmed.
func (r *Reader) ReadLine(ctx context.Context) (Line, error) {
	if ctx.Err() != nil {
		return Line{Kind: Interrupted}, nil
	}
	if r.closed {
		return Line{Kind: StreamClosed}, nil
	}
	r.start.Do(func() { go r.pump() })

	select {
	case <-ctx.Done():
		return Line{Kind: Interrupted}, nil
	case res, ok := <-r.lines:
		if !ok {
			r.closed = true
			return Line{Kind: StreamClosed}, nil
		}
		if res.err != nil {
			r.closed = true
			return Line{}, fmt.Errorf("read input: %w", res.err)
		}
		return Line{Kind: Answered, Text: res.text}, nil
	}
}

// pump feeds lines to ReadLine until the stream ends. A panic in the
// underlying reader is delivered as a read error.
func (r *Reader) pump() {
	defer close(r.lines)
	defer func() {
		if p := recover(); p != nil {
			r.lines <- readResult{err: fmt.Errorf("panic: %v", p)}
		}
	}()
	for {
		line, err := r.src.ReadString('\n')
		if line != "" {
			r.lines <- readResult{text: strings.TrimRight(line, "\r\n")}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.lines <- readResult{err: err}
			}
			return
		}
	}
}
