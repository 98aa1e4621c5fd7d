package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		log, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		log.With("mode", mode).Debug("hello", "n", 1)
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Info("ignored", "k", "v")
	log.Warn("ignored")
	log.Sync()
}

func TestFromZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core)).With("component", "test")

	log.Debug("dropped")
	log.Warn("kept", "path", "resume.pdf")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if entries[0].Message != "kept" || fields["path"] != "resume.pdf" || fields["component"] != "test" {
		t.Fatalf("entry = %+v", entries[0])
	}
}
