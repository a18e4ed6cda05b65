package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := parseLevel(tc.raw); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNewLoggerDoesNotPanic(t *testing.T) {
	logger := NewLogger(Config{Level: "debug", Format: "json", Service: "svc", Version: "test"})
	if logger == nil {
		t.Fatal("expected logger")
	}
	logger.Debug("hello")
}

func TestContextRoundTrip(t *testing.T) {
	base := slog.Default()
	ctx := WithLogger(context.Background(), base)

	if got := FromContext(ctx, nil); got != base {
		t.Fatal("expected logger stored on context")
	}
}

func TestFromContextFallback(t *testing.T) {
	fallback := slog.Default()
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger")
	}
	if got := FromContext(nil, fallback); got != fallback { //nolint:staticcheck
		t.Fatal("expected fallback logger for nil context")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", nil)
}
