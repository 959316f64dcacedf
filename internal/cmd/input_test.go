package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.jq")
	if err := os.WriteFile(path, []byte("  .[].slug \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := readInputSource(path, nil)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != ".[].slug" {
		t.Fatalf("expected trimmed content, got %q", got)
	}
}

func TestReadInputSourceFromStdin(t *testing.T) {
	got, err := readInputSource("-", strings.NewReader(".draft\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != ".draft" {
		t.Fatalf("expected stdin content, got %q", got)
	}
}

func TestReadInputSourceEmpty(t *testing.T) {
	if _, err := readInputSource("  ", nil); err == nil {
		t.Fatalf("expected error for empty source")
	}
}

func TestReadInputSourceMissingFile(t *testing.T) {
	if _, err := readInputSource(filepath.Join(t.TempDir(), "nope.jq"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
