package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "reignite.log")
	logger, err := New(Options{Path: path, Debug: true})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("frame budget exceeded")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "frame budget exceeded") {
		t.Fatalf("expected debug line in log, got %q", data)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected a usable logger")
	}
}
