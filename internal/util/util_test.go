package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestParseTimestampAcceptsBothLayouts(t *testing.T) {
	want := time.Date(2024, 3, 9, 18, 30, 5, 0, time.UTC)

	got, err := ParseTimestamp(FormatTimestamp(want))
	if err != nil {
		t.Fatalf("parse rfc3339: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got, err = ParseTimestamp("2024-03-09 18:30:05")
	if err != nil {
		t.Fatalf("parse sqlite layout: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Fatalf("expected error for garbage timestamp")
	}
}

func TestStringHelpers(t *testing.T) {
	if !IsBlank("  \t") {
		t.Fatalf("whitespace should be blank")
	}
	if IsBlank(" Vim ") {
		t.Fatalf("text should not be blank")
	}
	name := "Akin"
	if StringOr(&name, "") != "Akin" || StringOr(nil, "x") != "x" {
		t.Fatalf("StringOr returned unexpected values")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "akin.log")

	logger, err := NewLogger("debug", path)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	logger.Debug("Profile upserted")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "DEBUG | ") || !strings.Contains(string(data), "Profile upserted") {
		t.Fatalf("unexpected log output: %q", data)
	}
}
