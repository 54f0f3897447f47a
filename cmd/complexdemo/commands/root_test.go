package commands

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestRootCmd(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)
	t.Setenv("LOG_LEVEL", "debug")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := stdout.String(), "(0, -2)\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if !strings.Contains(stderr.String(), "Computed result") {
		t.Errorf("expected debug log on stderr, got %q", stderr.String())
	}
}

func TestRootCmdRejectsArgs(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"extra"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unexpected argument")
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output, got %q", stdout.String())
	}
}
