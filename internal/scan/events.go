package scan

import "github.com/water-run/treepp/internal/treemodel"

// EventKind tags a streaming-mode scan event.
type EventKind int

const (
	EventEnterDir EventKind = iota
	EventFile
	EventLeaveDir
	EventWarning
)

// Event is one step of the streaming depth-first walk. IsLast indicates
// whether Entry is the last among its already-enumerated siblings, which
// is all the renderer needs to pick a branch-vs-last connector.
type Event struct {
	Kind    EventKind
	Entry   *treemodel.Entry
	IsLast  bool
	Path    string // only set for EventWarning
	Warning error  // only set for EventWarning
}

// ScanStats accumulates the counters needed for the --report summary
// line.
type ScanStats struct {
	Directories int
	Files       int
}
