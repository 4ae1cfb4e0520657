package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteConsoleSuppressedWhenSilent(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(&buf, "", true)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.WriteConsole([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no console output when silent, got %q", buf.String())
	}
}

func TestWriteConsolePassesThroughWhenNotSilent(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(&buf, "", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.WriteConsole([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteFileCreatesAndWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	s, err := New(&bytes.Buffer{}, path, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.WriteFile([]byte("tree output")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "tree output" {
		t.Errorf("got %q", data)
	}
}

func TestWriteFileWrapsFailureAsErrOutputWrite(t *testing.T) {
	dir := t.TempDir()
	// A path under a file (not a directory) can never be opened for
	// writing, forcing WriteFile's open failure branch.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(blocker, "out.txt")

	s, err := New(&bytes.Buffer{}, path, true)
	if err != nil {
		t.Fatal(err)
	}
	writeErr := s.WriteFile([]byte("data"))
	if writeErr == nil {
		t.Fatal("expected a write error")
	}
	if !errors.Is(writeErr, ErrOutputWrite) {
		t.Fatalf("expected ErrOutputWrite, got %v", writeErr)
	}
}

func TestSubdueIsNoopForNonTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(&buf, "", false)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Subdue("plain"); got != "plain" {
		t.Errorf("expected an unstyled pass-through for a non-terminal writer, got %q", got)
	}
}

func TestWriteFileNoopWhenNoPath(t *testing.T) {
	s, err := New(&bytes.Buffer{}, "", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.WriteFile([]byte("x")); err != nil {
		t.Fatal(err)
	}
}
