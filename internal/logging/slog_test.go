package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func newBufLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("not a JSON log line: %v (%q)", err, buf.String())
	}
	return m
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		level string
		log   func(l *SlogLogger)
	}{
		{"DEBUG", func(l *SlogLogger) { l.Debug(ctx, "m") }},
		{"INFO", func(l *SlogLogger) { l.Info(ctx, "m") }},
		{"WARN", func(l *SlogLogger) { l.Warn(ctx, "m") }},
		{"ERROR", func(l *SlogLogger) { l.Error(ctx, "m") }},
	} {
		l, buf := newBufLogger(t)
		tc.log(l)
		if got := lastLine(t, buf)["level"]; got != tc.level {
			t.Fatalf("want level %s, got %v", tc.level, got)
		}
	}
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	l, buf := newBufLogger(t)
	child := l.With("request_id", "abc123")
	child.Info(context.Background(), "handled")

	m := lastLine(t, buf)
	if m["request_id"] != "abc123" {
		t.Fatalf("child logger lost bound field: %v", m)
	}
	if m["msg"] != "handled" {
		t.Fatalf("unexpected msg: %v", m)
	}
}
