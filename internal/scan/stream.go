package scan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/water-run/treepp/internal/gitignore"
	"github.com/water-run/treepp/internal/sortkey"
	"github.com/water-run/treepp/internal/treemodel"
)

// ErrRootUnreadable is returned when the root path cannot be opened; the
// CLI boundary maps this to exit code 2.
var ErrRootUnreadable = errors.New("scan: root path unreadable")

// StreamConfig parameterizes the single-producer depth-first streaming
// scanner.
type StreamConfig struct {
	FS       afero.Fs
	RootPath string
	Filter   FilterConfig
	SortKey  sortkey.Key
	Reverse  bool

	DirsFirst bool
	Warn      func(path string, err error)
}

// ScanDirectoryStreaming walks cfg.RootPath depth-first, emitting one
// Event per directory-enter, file, and directory-leave; per-entry warnings
// are reported through cfg.Warn rather than emitted as Events. It holds
// no materialized tree beyond the current ancestor stack.
func ScanDirectoryStreaming(ctx context.Context, cfg StreamConfig, emit func(Event) error) error {
	rootInfo, err := cfg.FS.Stat(cfg.RootPath)
	if err != nil || !rootInfo.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootUnreadable, cfg.RootPath)
	}

	chain := gitignore.Chain{}
	if cfg.Filter.UseGitignore {
		chain = chain.Append(gitignore.Load(cfg.FS, cfg.RootPath, "", cfg.Warn))
	}

	return streamDirectory(ctx, cfg, cfg.RootPath, "", 0, chain, emit)
}

func streamDirectory(ctx context.Context, cfg StreamConfig, dirPath, relPath string, depth int, chain gitignore.Chain, emit func(Event) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dirEntries, err := readDirSorted(cfg.FS, dirPath)
	if err != nil {
		cfg.Warn(dirPath, err)
		return nil
	}

	entries := make([]*treemodel.Entry, 0, len(dirEntries))
	relByName := map[string]string{}
	descendByName := map[string]bool{}
	for _, dirEntry := range dirEntries {
		entry, statErr := statEntry(cfg.FS, dirPath, dirEntry, depth+1)
		if statErr != nil {
			cfg.Warn(filepath.Join(dirPath, dirEntry.Name()), statErr)
			continue
		}
		childRelPath := JoinRelPath(relPath, entry.Name)
		decision := Evaluate(entry, childRelPath, cfg.Filter, chain)
		if !decision.Keep {
			continue
		}
		entries = append(entries, entry)
		relByName[entry.Name] = childRelPath
		descendByName[entry.Name] = decision.DescendInto
	}

	sortkey.Sort(entries, cfg.SortKey, cfg.Reverse, cfg.DirsFirst)

	for i, entry := range entries {
		isLast := i == len(entries)-1
		childRelPath := relByName[entry.Name]

		if entry.Kind != treemodel.Directory {
			if err := emit(Event{Kind: EventFile, Entry: entry, IsLast: isLast}); err != nil {
				return err
			}
			continue
		}

		if err := emit(Event{Kind: EventEnterDir, Entry: entry, IsLast: isLast}); err != nil {
			return err
		}

		descend := descendByName[entry.Name]
		childChain := chain
		if cfg.Filter.UseGitignore && descend {
			childDir := filepath.Join(dirPath, entry.Name)
			set := gitignore.Load(cfg.FS, childDir, childRelPath, cfg.Warn)
			childChain = chain.Append(set)
		}

		if descend {
			if err := streamDirectory(ctx, cfg, filepath.Join(dirPath, entry.Name), childRelPath, depth+1, childChain, emit); err != nil {
				return err
			}
		}

		if err := emit(Event{Kind: EventLeaveDir, Entry: entry, IsLast: isLast}); err != nil {
			return err
		}
	}
	return nil
}
