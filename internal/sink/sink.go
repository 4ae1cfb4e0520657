// Package sink implements the tee of console and optional file output,
// with --silent suppression and an advisory file lock for the duration of
// a file write.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
)

// ErrOutputWrite wraps any failure writing the file leg, so the CLI
// boundary can map it to exit code 3 via errors.Is regardless of the
// underlying cause (open failure, lock failure, write failure).
var ErrOutputWrite = errors.New("sink: output file write failed")

// Sink writes to stdout (unless silent) and, optionally, to a file.
type Sink struct {
	stdout   io.Writer
	silent   bool
	filePath string
	subdue   func(string) string
}

// New constructs a Sink. filePath may be empty, meaning no file leg.
// Coloring is decided once here, from whether stdout is a terminal, so
// redirected or piped output never carries escape codes.
func New(stdout io.Writer, filePath string, silent bool) (*Sink, error) {
	return &Sink{stdout: stdout, filePath: filePath, silent: silent, subdue: subdueFuncFor(stdout)}, nil
}

// subdueFuncFor returns the styling function used for "Other"-kind
// entries and the summary footer: a dimmed color when stdout is an
// attached terminal, identity otherwise.
func subdueFuncFor(w io.Writer) func(string) string {
	file, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(file.Fd()) {
		return func(s string) string { return s }
	}
	c := color.New(color.FgHiBlack)
	return func(s string) string { return c.Sprint(s) }
}

// Subdue applies the console leg's "subdued" style to text, a no-op when
// stdout isn't a terminal. Callers use it to dim "Other"-kind entry lines
// and the --report summary line before handing them to WriteConsole; the
// file leg always receives the unstyled text.
func (s *Sink) Subdue(text string) string {
	return s.subdue(text)
}

// WriteConsole writes p to the stdout leg unless --silent is set. A
// broken pipe (reader gone) is absorbed rather than surfaced as an error,
// matching the spec's "silent stdout" failure semantics.
func (s *Sink) WriteConsole(p []byte) error {
	if s.silent {
		return nil
	}
	_, err := s.stdout.Write(p)
	if err != nil && errors.Is(err, syscall.EPIPE) {
		return nil
	}
	return err
}

// WriteFile writes p to the file leg, taking an advisory lock for the
// duration of the write so two concurrent invocations targeting the same
// output path don't interleave. A failure here is fatal (exit 3 at the
// CLI boundary).
func (s *Sink) WriteFile(p []byte) error {
	if s.filePath == "" {
		return nil
	}
	lock := flock.New(s.filePath + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	defer lock.Unlock()

	file, err := os.OpenFile(s.filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	defer file.Close()

	if _, err := file.Write(p); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// Close is a no-op today; it exists so callers have a symmetric
// construct/teardown pair if a future file leg needs to keep a handle
// open across multiple writes.
func (s *Sink) Close() error {
	return nil
}
