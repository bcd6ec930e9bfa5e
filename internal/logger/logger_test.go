package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Options{Level: "warn", Out: &buf})
	l.Info().Msg("hidden")
	l.Warn().Str("file", "a.xlsx").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "a.xlsx") {
		t.Fatalf("warn message missing: %s", out)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithContext(context.Background(), New(Options{Out: &buf}))
	l := FromContext(ctx)
	l.Info().Msg("from ctx")
	if !strings.Contains(buf.String(), "from ctx") {
		t.Fatalf("logger not propagated: %q", buf.String())
	}

	nop := FromContext(context.Background())
	nop.Info().Msg("dropped")
}
