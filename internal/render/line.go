package render

import (
	"fmt"
	"strings"

	"github.com/water-run/treepp/internal/treemodel"
)

// nameSegment builds the name portion of a line: displayName is either the
// entry's base name or a precomputed full path, supplied by the caller
// since Entry itself only carries the base name.
func nameSegment(displayName string, quote bool) string {
	if quote {
		return `"` + displayName + `"`
	}
	return displayName
}

// metadataSegment builds the trailing "size  date" block for one entry, or
// "" when neither is requested.
func metadataSegment(e *treemodel.Entry, opts LineOptions) string {
	var parts []string
	if opts.effectiveShowSize() {
		if opts.HumanReadable {
			parts = append(parts, FormatSizeHuman(sizeFor(e)))
		} else {
			parts = append(parts, FormatSizeBytes(sizeFor(e)))
		}
	}
	if opts.ShowDate {
		parts = append(parts, FormatTimestamp(e.MTime))
	}
	return strings.Join(parts, "  ")
}

// sizeFor prefers a directory's cumulative disk usage when it has been
// computed (non-zero requires an explicit aggregate pass, but a directory
// with no children legitimately has size 0 either way).
func sizeFor(e *treemodel.Entry) int64 {
	if e.Kind == treemodel.Directory {
		return e.DiskUsage
	}
	return e.Size
}

// composeLine joins prefix, name, and a metadata block separated by a
// fixed eight-space gap, matching the legacy tool's literal column layout
// (no per-parent alignment against sibling widths).
func composeLine(prefix, name, metadata string) string {
	if metadata == "" {
		return prefix + name
	}
	return fmt.Sprintf("%s%s        %s", prefix, name, metadata)
}

// applySubdue styles a composed line when it describes an "Other"-kind
// entry and a styling function was configured; every other kind (and a
// nil Subdue) passes the line through unchanged.
func applySubdue(line string, kind treemodel.Kind, opts LineOptions) string {
	if kind != treemodel.Other || opts.Subdue == nil {
		return line
	}
	return opts.Subdue(line)
}
