package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	if got := LevelFromEnv(); got != slog.LevelWarn {
		t.Errorf("LevelFromEnv() = %v, want %v", got, slog.LevelWarn)
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelWarn))

	logger.Info("Hidden message")
	if buf.Len() != 0 {
		t.Fatalf("expected INFO to be filtered at WARN level, got %q", buf.String())
	}

	logger.Warn("Visible message", "op", "lt")
	out := buf.String()
	if !strings.Contains(out, "Visible message") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "op=lt") {
		t.Errorf("expected attribute in output, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no ANSI colors for non-terminal writer, got %q", out)
	}
}

func TestSetupWriter(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	SetupWriter(&buf, slog.LevelDebug)
	slog.Debug("Debug enabled")

	if !strings.Contains(buf.String(), "Debug enabled") {
		t.Errorf("expected default logger to write to buffer, got %q", buf.String())
	}
}
