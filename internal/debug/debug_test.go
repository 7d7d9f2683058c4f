package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "prompt.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !Enabled() {
		t.Fatal("Enabled() = false after Init")
	}

	Log("key %s", "ctrl+a")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	Log("dropped after close")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "] key ctrl+a\n") {
		t.Errorf("log = %q, want it to contain the message", got)
	}
	if strings.Contains(got, "dropped") {
		t.Errorf("log = %q, message after Close was written", got)
	}
	if Enabled() {
		t.Error("Enabled() = true after Close")
	}
}

func TestInitEmptyPath(t *testing.T) {
	if err := Init(""); err == nil {
		t.Error("Init(\"\") = nil, want error")
	}
}
