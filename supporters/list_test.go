package supporters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFirstSupporter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"Two names", "Alice\nBob\n", "Alice"},
		{"Surrounding spaces", "  Alice  \nBob", "Alice"},
		{"No trailing newline", "Alice", "Alice"},
		{"CRLF", "Alice\r\nBob\r\n", "Alice"},
		{"Byte order mark", "\ufeffAlice\n", "Alice"},
		{"Inner spaces kept", "Alice Smith\n", "Alice Smith"},
		{"Empty file", "", ""},
		{"Blank first line", "\nBob\n", ""},
		{"Whitespace first line", " \t \nBob\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "supporters.list")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := FirstSupporter(path)
			if err != nil {
				t.Fatalf("FirstSupporter() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("FirstSupporter() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFirstSupporterMissing(t *testing.T) {
	_, err := FirstSupporter(filepath.Join(t.TempDir(), "supporters.list"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want fs.ErrNotExist, got %v", err)
	}
}

func TestFirstSupporterLongLine(t *testing.T) {
	name := strings.Repeat("a", 100*1024)
	path := filepath.Join(t.TempDir(), "supporters.list")
	if err := os.WriteFile(path, []byte(name+"\nBob\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FirstSupporter(path)
	if err != nil {
		t.Fatalf("FirstSupporter() error = %v", err)
	}
	if got != name {
		t.Fatalf("FirstSupporter() returned %d bytes, want %d", len(got), len(name))
	}
}
