package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Name: "core", Level: LevelWarn, Enabled: true, Out: &buf})

	l.Debug("should not appear")
	l.Warn("should appear: %d", 42)

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Fatalf("debug message was not filtered out: %q", out)
	}
	if !strings.Contains(out, "should appear: 42") {
		t.Fatalf("warn message missing: %q", out)
	}
}

func TestLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Enabled: false, Out: &buf})
	l.Fatal("nope")
	if buf.Len() != 0 {
		t.Fatalf("expected no output while disabled, got %q", buf.String())
	}
}

func TestLoggerPattern(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Pattern: "%N|%L|%M", Name: "client", Level: LevelTrace, Enabled: true, Out: &buf})
	l.Info("hello")
	if !strings.Contains(buf.String(), "client|") {
		t.Fatalf("name not substituted: %q", buf.String())
	}
}
