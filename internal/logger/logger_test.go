package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "game.log")
	log, err := New(path, true)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Debug("round started")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "round started") {
		t.Fatalf("expected debug entry in log, got %q", data)
	}
}

func TestNewProductionSkipsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, err := New(path, false)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Debug("hidden")
	log.Info("visible")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") || !strings.Contains(out, "visible") {
		t.Fatalf("unexpected log contents: %q", out)
	}
}
