package render

import (
	"fmt"
	"path"

	"github.com/water-run/treepp/internal/treemodel"
)

// RenderBatch turns a fully-scanned, sorted tree into its line output:
// header and recursive body. The --report summary footer is not part of
// it (see FormatSummary). Children are assumed already ordered by the
// sorter; RenderBatch does not sort.
func RenderBatch(root *treemodel.Entry, opts Options) []string {
	lines := Header(opts)
	lines = append(lines, renderChildren(root, "", root.Name, opts.Line)...)
	return lines
}

// Header produces the (up to) three header lines: the two opaque banner
// lines, unless suppressed, followed by the display-root line.
func Header(opts Options) []string {
	var lines []string
	if !opts.NoWinBanner {
		lines = append(lines, opts.Banner...)
	}
	lines = append(lines, opts.DisplayRoot)
	return lines
}

func renderChildren(parent *treemodel.Entry, prefix, parentPath string, lineOpts LineOptions) []string {
	visible := visibleChildren(parent)

	var lines []string
	for i, child := range visible {
		isLast := i == len(visible)-1
		connector := lineOpts.Glyphs.Branch
		childPrefix := prefix + lineOpts.Glyphs.Vertical
		if isLast {
			connector = lineOpts.Glyphs.Last
			childPrefix = prefix + lineOpts.Glyphs.Blank
		}
		if lineOpts.NoIndent {
			connector = lineOpts.Glyphs.Blank
			if child.Kind != treemodel.Directory {
				connector += "  "
			}
			childPrefix = prefix + lineOpts.Glyphs.Blank
		}

		displayName := displayNameFor(child, parentPath, lineOpts)
		metadata := metadataSegment(child, lineOpts)
		line := composeLine(prefix+connector, nameSegment(displayName, lineOpts.Quote), metadata)
		lines = append(lines, applySubdue(line, child.Kind, lineOpts))

		if child.Kind == treemodel.Directory {
			lines = append(lines, renderChildren(child, childPrefix, path.Join(parentPath, child.Name), lineOpts)...)
		}
	}
	return lines
}

func visibleChildren(parent *treemodel.Entry) []*treemodel.Entry {
	visible := make([]*treemodel.Entry, 0, len(parent.Children))
	for _, child := range parent.Children {
		if child.Kind == treemodel.Directory && child.IsPruned {
			continue
		}
		visible = append(visible, child)
	}
	return visible
}

func displayNameFor(e *treemodel.Entry, parentPath string, lineOpts LineOptions) string {
	if !lineOpts.FullPath {
		return e.Name
	}
	return path.Join(parentPath, e.Name)
}

// FormatSummary renders the --report footer line: "N directory[ies], M
// file[s] in X.XXXs".
func FormatSummary(directories, files int, elapsedSeconds float64) string {
	return fmt.Sprintf("%s, %s in %.3fs", pluralize(directories, "directory", "directories"), pluralize(files, "file", "files"), elapsedSeconds)
}

func pluralize(n int, singular, plural string) string {
	word := plural
	if n == 1 {
		word = singular
	}
	return fmt.Sprintf("%d %s", n, word)
}
