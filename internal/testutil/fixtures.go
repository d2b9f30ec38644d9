// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteFiles creates dir/name for every entry in files with the given contents
// and returns dir. Names may contain slashes; parent directories are created.
func WriteFiles(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create fixture dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}
	return dir
}

// NewDictionaryDir creates a temp directory holding the given JSON dictionary
// files and returns its path.
func NewDictionaryDir(t *testing.T, files map[string]string) string {
	t.Helper()
	return WriteFiles(t, t.TempDir(), files)
}

// DictionaryJSON marshals a headword-to-definition mapping into a dictionary
// document like the ones wordagg consumes.
func DictionaryJSON(t *testing.T, entries map[string]any) string {
	t.Helper()
	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("failed to marshal dictionary: %v", err)
	}
	return string(data)
}

// ReadFile returns the contents of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
