package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/water-run/treepp/internal/config"
	"github.com/water-run/treepp/internal/sink"
)

func writeFixture(t *testing.T, root string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("world"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunStreamingRendersFixture(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root)

	cfg := config.Defaults()
	cfg.IncludeFiles = true
	cfg.NoWinBanner = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	s, err := sink.New(&stdout, "", false)
	if err != nil {
		t.Fatal(err)
	}

	stats, err := Run(context.Background(), cfg, root, s)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Files != 2 || stats.Directories != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if !strings.Contains(stdout.String(), "a.txt") || !strings.Contains(stdout.String(), "sub") {
		t.Fatalf("output missing expected entries: %s", stdout.String())
	}
}

func TestRunBatchWithDiskUsageAndReport(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root)

	cfg := config.Defaults()
	cfg.IncludeFiles = true
	cfg.NoWinBanner = true
	cfg.DiskUsage = true
	cfg.Report = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Mode() != config.Batch {
		t.Fatalf("expected --disk-usage to select batch mode")
	}

	var stdout bytes.Buffer
	s, err := sink.New(&stdout, "", false)
	if err != nil {
		t.Fatal(err)
	}

	stats, err := Run(context.Background(), cfg, root, s)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Files != 2 || stats.Directories != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if !strings.Contains(stdout.String(), "directory") || !strings.Contains(stdout.String(), "file") {
		t.Fatalf("expected a summary line, got %s", stdout.String())
	}
}

func TestRunBatchWritesJSONFile(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root)
	outPath := filepath.Join(root, "tree.json")

	cfg := config.Defaults()
	cfg.IncludeFiles = true
	cfg.NoWinBanner = true
	cfg.Output = outPath
	cfg.Silent = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	s, err := sink.New(&stdout, outPath, true)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Run(context.Background(), cfg, root, s); err != nil {
		t.Fatal(err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no console output under --silent, got %q", stdout.String())
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "a.txt") {
		t.Fatalf("expected JSON output to contain a.txt, got %s", data)
	}
}

func TestRunHonorsIgnoreCaseExcludePattern(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root)

	cfg := config.Defaults()
	cfg.IncludeFiles = true
	cfg.NoWinBanner = true
	cfg.ExcludePatterns = []string{"A.TXT"}
	cfg.IgnoreCase = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	s, err := sink.New(&stdout, "", false)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Run(context.Background(), cfg, root, s); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(stdout.String(), "a.txt") {
		t.Fatalf("expected --ignore-case to fold \"A.TXT\" against \"a.txt\", got %s", stdout.String())
	}
}

func TestRunRejectsUnreadableRoot(t *testing.T) {
	cfg := config.Defaults()
	cfg.NoWinBanner = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	s, err := sink.New(&stdout, "", false)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Run(context.Background(), cfg, filepath.Join(t.TempDir(), "missing"), s); err == nil {
		t.Fatal("expected an error for an unreadable root")
	}
}
