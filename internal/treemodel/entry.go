// Package treemodel defines the in-memory record for a scanned filesystem
// object and the data structures built on top of it.
package treemodel

import (
	"sync"
	"time"
)

// Kind classifies a scanned filesystem object.
type Kind int

const (
	Directory Kind = iota
	File
	Other
)

func (k Kind) String() string {
	switch k {
	case Directory:
		return "directory"
	case File:
		return "file"
	default:
		return "other"
	}
}

// Entry represents one filesystem object discovered by the scanner.
//
// Entries are created by the scanner and, except for DiskUsage (filled by
// the aggregator) and IsPruned (filled by the pruning pass), are never
// mutated after sorting. In streaming mode an Entry is stack-scoped to its
// parent's iteration; in batch mode it lives until the root tree is
// dropped.
type Entry struct {
	Name  string
	Kind  Kind
	Size  int64
	MTime time.Time
	CTime time.Time

	// DiskUsage is only populated in batch mode when cumulative size was
	// requested; it is the recursive sum of child file sizes.
	DiskUsage int64

	// Children is populated only in batch mode, ordered, and unique by
	// Name. mu guards appends while the scanner pool is still draining;
	// no children are added after the pool's WaitGroup.Wait() returns,
	// and the sorter then reorders each list once before any reader runs.
	Children []*Entry
	mu       sync.Mutex

	Depth int

	// IsPruned is a post-render marker: true if this directory contains
	// no visible files transitively. Only meaningful under --prune.
	IsPruned bool
}

// AddChild appends child under a per-entry lock, rejecting duplicate names
// so the batch-mode unique-by-name invariant holds under concurrent
// scanner workers.
func (e *Entry) AddChild(child *Entry) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.Children {
		if existing.Name == child.Name {
			return false
		}
	}
	e.Children = append(e.Children, child)
	return true
}

// SortValue returns the size used by the sorter's size key: a file's own
// size, or a directory's disk usage when already computed.
func (e *Entry) SortValue() int64 {
	if e.Kind == Directory {
		return e.DiskUsage
	}
	return e.Size
}
