package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevelFallsBackToInfo(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}

	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info().Msg("hidden")
	logger.Warn().Str("slot", "stark-notes").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected info message to be filtered, got %q", out)
	}
	if !strings.Contains(out, `"slot":"stark-notes"`) {
		t.Fatalf("expected structured field in output, got %q", out)
	}
}

func TestOpenAppendsToLogFile(t *testing.T) {
	dir := t.TempDir()

	logger, closer, err := Open(dir, "info")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Info().Msg("first")
	if err := closer.Close(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stark.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "first") {
		t.Fatalf("expected log file to contain message, got %q", data)
	}
}

func TestConsoleIsHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	log := Console(&buf, "info")
	log.Error().Str("workspace", "lab").Msg("failed to load workspace")

	out := buf.String()
	if strings.HasPrefix(out, "{") {
		t.Fatalf("expected console output, got JSON %q", out)
	}
	if !strings.Contains(out, "failed to load workspace") || !strings.Contains(out, "workspace=") {
		t.Fatalf("unexpected console output %q", out)
	}
}
