package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/water-run/treepp/internal/gitignore"
	"github.com/water-run/treepp/internal/sortkey"
	"github.com/water-run/treepp/internal/treemodel"
)

// BatchConfig parameterizes the bounded work-stealing batch scanner.
type BatchConfig struct {
	FS        afero.Fs
	RootPath  string
	Filter    FilterConfig
	SortKey   sortkey.Key
	Reverse   bool
	DirsFirst bool

	// Threads sizes the worker pool; defaults to 8 when <= 0.
	Threads int
	Warn    func(path string, err error)
}

type dirTask struct {
	node    *treemodel.Entry
	dirPath string
	relPath string
	chain   gitignore.Chain
}

// ScanTreeBatch scans cfg.RootPath with a fixed-size worker pool reading a
// self-replenishing directory queue: scanning one directory discovers its
// subdirectories and enqueues them, merging file entries into the shared
// tree under a per-parent Entry lock. The pool drains via a WaitGroup;
// the returned tree is read-only once ScanTreeBatch returns.
//
// Grounded on the wave-of-tasks executor shape: a semaphore-bounded
// goroutine set pulling from a shared queue, generalized here from a
// fixed batch of tasks to a queue that grows as directories are
// discovered.
func ScanTreeBatch(ctx context.Context, cfg BatchConfig) (*treemodel.Entry, ScanStats, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = 8
	}

	rootInfo, err := cfg.FS.Stat(cfg.RootPath)
	if err != nil || !rootInfo.IsDir() {
		return nil, ScanStats{}, fmt.Errorf("%w: %s", ErrRootUnreadable, cfg.RootPath)
	}

	root := &treemodel.Entry{Kind: treemodel.Directory, Depth: 0}

	chain := gitignore.Chain{}
	if cfg.Filter.UseGitignore {
		chain = chain.Append(gitignore.Load(cfg.FS, cfg.RootPath, "", cfg.Warn))
	}

	q := newTaskQueue()
	var pending sync.WaitGroup
	pending.Add(1)
	q.push(dirTask{node: root, dirPath: cfg.RootPath, relPath: "", chain: chain})

	// The root itself is never counted, matching the streaming scanner's
	// convention: only descendants contribute to the --report totals.
	var stats statsCounter

	for workerIndex := 0; workerIndex < threads; workerIndex++ {
		go func() {
			for {
				task, ok := q.pop(ctx.Done())
				if !ok {
					return
				}
				processDirectory(ctx, cfg, task, q, &pending, &stats)
				pending.Done()
			}
		}()
	}

	pending.Wait()
	q.close()

	sortTreeRecursive(root, cfg.SortKey, cfg.Reverse, cfg.DirsFirst)

	return root, stats.snapshot(), ctx.Err()
}

func processDirectory(ctx context.Context, cfg BatchConfig, task dirTask, q *taskQueue, pending *sync.WaitGroup, stats *statsCounter) {
	if ctx.Err() != nil {
		return
	}

	dirEntries, err := readDirSorted(cfg.FS, task.dirPath)
	if err != nil {
		cfg.Warn(task.dirPath, err)
		return
	}

	for _, dirEntry := range dirEntries {
		entry, statErr := statEntry(cfg.FS, task.dirPath, dirEntry, task.node.Depth+1)
		if statErr != nil {
			cfg.Warn(filepath.Join(task.dirPath, dirEntry.Name()), statErr)
			continue
		}
		childRelPath := JoinRelPath(task.relPath, entry.Name)
		decision := Evaluate(entry, childRelPath, cfg.Filter, task.chain)
		if !decision.Keep {
			continue
		}

		if !task.node.AddChild(entry) {
			continue
		}

		if entry.Kind == treemodel.Directory {
			stats.directories.Add(1)
			childChain := task.chain
			if cfg.Filter.UseGitignore && decision.DescendInto {
				childDir := filepath.Join(task.dirPath, entry.Name)
				set := gitignore.Load(cfg.FS, childDir, childRelPath, cfg.Warn)
				childChain = task.chain.Append(set)
			}
			if decision.DescendInto {
				pending.Add(1)
				q.push(dirTask{
					node:    entry,
					dirPath: filepath.Join(task.dirPath, entry.Name),
					relPath: childRelPath,
					chain:   childChain,
				})
			}
		} else {
			stats.files.Add(1)
		}
	}
}

// sortTreeRecursive applies the sorter to every directory's children
// after the pool has fully drained, establishing the happens-before the
// concurrency model requires before any reader runs.
func sortTreeRecursive(node *treemodel.Entry, key sortkey.Key, reverse, dirsFirst bool) {
	if node.Kind != treemodel.Directory {
		return
	}
	sortkey.Sort(node.Children, key, reverse, dirsFirst)
	for _, child := range node.Children {
		sortTreeRecursive(child, key, reverse, dirsFirst)
	}
}
