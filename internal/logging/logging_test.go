package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "todo.log")
	logger, closer, err := New("debug", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("todo added", "id", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "todo added") || !strings.Contains(out, "id=1") {
		t.Errorf("log output: got %q", out)
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closer, err := New("info", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, _, err := New("loud", ""); err == nil {
		t.Error("New(loud): want error")
	}
}
