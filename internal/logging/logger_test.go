package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	if err := l.SetLevel("warn"); err != nil {
		t.Fatal(err)
	}
	if l.Level() != zerolog.WarnLevel {
		t.Errorf("Level() = %v, want warn", l.Level())
	}

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestSetLevelInvalid(t *testing.T) {
	l := NewNop()
	if err := l.SetLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
