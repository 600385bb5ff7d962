package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewVerboseWritesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(true, &buf)
	log.Debug("session started", zap.String("session_id", "abc"))
	if !strings.Contains(buf.String(), "session started") || !strings.Contains(buf.String(), "abc") {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}

func TestNewQuietDiscards(t *testing.T) {
	var buf bytes.Buffer
	New(false, &buf).Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
