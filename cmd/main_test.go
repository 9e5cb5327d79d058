package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"home_patterns/internal/config"
	"home_patterns/internal/logger"
)

// syncBuffer records Sync calls made through the zap core.
type syncBuffer struct {
	bytes.Buffer
	syncs int
}

func (b *syncBuffer) Sync() error {
	b.syncs++
	return nil
}

func TestAppStart_JournalFailureFlushesLog(t *testing.T) {
	var out syncBuffer
	a := &app{
		cfg: &config.Config{DB: config.DBConfig{Path: filepath.Join(t.TempDir(), "missing", "dir", "home.db")}},
		log: logger.NewWithWriter(&out, logger.DebugLevel),
	}

	if err := a.start(); err == nil {
		t.Fatal("expected an error for an unreachable db path")
	}
	if out.syncs == 0 {
		t.Fatal("log was not synced after the failure")
	}
	if !strings.Contains(out.String(), "journal_open_failed") {
		t.Fatalf("missing failure line in log: %q", out.String())
	}
}

func TestAppStart_InMemoryJournal(t *testing.T) {
	a := &app{cfg: &config.Config{}, log: logger.Nop()}
	if err := a.start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if a.repos == nil || a.db != nil {
		t.Fatalf("expected memory repos and no sqlite handle")
	}
	a.close()
}
