package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"uppercase YES", "YES\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"lowercase no", "no\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
		{"yes with spaces", "  yes  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			result := confirm(strings.NewReader(tt.input), &out, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
			if out.String() != "Test? [y/N]: " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	// Test with empty reader (simulates EOF)
	if confirm(strings.NewReader(""), io.Discard, "Test?") {
		t.Error("confirm(EOF) = true, want false")
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	if confirm(&errorReader{}, io.Discard, "Test?") {
		t.Error("confirm(error) = true, want false")
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestRunClean_NothingToClean(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader(""), &out, []string{filepath.Join(dir, "missing.log")}); err != nil {
		t.Fatalf("runCleanWithReader: %v", err)
	}
	if !strings.Contains(out.String(), "Nothing to clean.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunClean_Confirmed(t *testing.T) {
	origSkip := skipConfirm
	defer func() { skipConfirm = origSkip }()
	skipConfirm = false

	dir := t.TempDir()
	logPath := filepath.Join(dir, "songbook-debug.log")
	cfgPath := filepath.Join(dir, "config.json")
	writeFile(t, logPath)
	writeFile(t, cfgPath)

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader("y\n"), &out, []string{logPath, cfgPath}); err != nil {
		t.Fatalf("runCleanWithReader: %v", err)
	}
	for _, path := range []string{logPath, cfgPath} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("%s should be removed", path)
		}
	}
	if !strings.Contains(out.String(), "Removed 2 file(s).") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunClean_Aborted(t *testing.T) {
	origSkip := skipConfirm
	defer func() { skipConfirm = origSkip }()
	skipConfirm = false

	logPath := filepath.Join(t.TempDir(), "songbook-debug.log")
	writeFile(t, logPath)

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader("n\n"), &out, []string{logPath}); err != nil {
		t.Fatalf("runCleanWithReader: %v", err)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Error("file should survive an aborted clean")
	}
	if !strings.Contains(out.String(), "Aborted.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunClean_SkipConfirm(t *testing.T) {
	origSkip := skipConfirm
	defer func() { skipConfirm = origSkip }()
	skipConfirm = true

	logPath := filepath.Join(t.TempDir(), "songbook-debug.log")
	writeFile(t, logPath)

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader(""), &out, []string{logPath}); err != nil {
		t.Fatalf("runCleanWithReader: %v", err)
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Error("file should be removed without a prompt")
	}
	if strings.Contains(out.String(), "[y/N]") {
		t.Error("--yes should skip the prompt")
	}
}
