package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile writes content to path, creating parent directories.
func CreateTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// AssertFileExists fails the test when path is missing.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected %s to exist", path)
	}
}

// AssertFileNotExists fails the test when path is present.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected %s to be absent", path)
	}
}

// AssertFileContains fails the test unless the file at path holds substring.
func AssertFileContains(t *testing.T, path, substring string) {
	t.Helper()

	if content := readFile(t, path); !strings.Contains(content, substring) {
		t.Errorf("%s does not contain %q:\n%s", path, substring, content)
	}
}

// ReadLines returns the non-empty lines of a file, e.g. JSONL records.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()

	var lines []string
	for line := range strings.Lines(readFile(t, path)) {
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}
