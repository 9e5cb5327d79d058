package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"":         zapcore.InfoLevel,
		"verbose":  zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, " WARN ")

	log.Infow("remote_execute", "command", "turn on light")
	log.Warnw("journal_append_failed", "err", "db down")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "remote_execute") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "journal_append_failed") || !strings.Contains(out, "WARN") {
		t.Fatalf("expected warn line, got %q", out)
	}
}

func TestNop_DiscardsAndIsUsable(t *testing.T) {
	log := Nop()
	if log == nil || log.SugaredLogger == nil {
		t.Fatalf("Nop() returned unusable logger")
	}
	log.Errorw("ignored", "k", "v")
}

func TestGet_ReturnsSingleton(t *testing.T) {
	a := Get(DebugLevel)
	b := Get(ErrorLevel)
	if a != b {
		t.Fatalf("Get should return the same instance")
	}
}
