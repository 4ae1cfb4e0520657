// Package aggregate walks a fully-scanned batch tree to compute the
// derived fields that require the whole tree to already exist: cumulative
// disk usage and the pruned-empty-directory marker. Neither runs in
// streaming mode, which is why --disk-usage and --prune force batch mode
// at config-validation time.
package aggregate

import "github.com/water-run/treepp/internal/treemodel"

// Aggregate fills DiskUsage on every directory in the tree, bottom-up:
// disk_usage(dir) = sum(size(f)) for every file transitively inside dir.
// Directory intrinsic sizes are excluded from the sum.
func Aggregate(root *treemodel.Entry) int64 {
	if root == nil {
		return 0
	}
	if root.Kind != treemodel.Directory {
		return root.Size
	}
	var total int64
	for _, child := range root.Children {
		total += Aggregate(child)
	}
	root.DiskUsage = total
	return total
}

// MarkPruned fills IsPruned bottom-up: a directory is pruned when its
// subtree (recursively) yields no file entries at all.
func MarkPruned(root *treemodel.Entry) bool {
	if root == nil {
		return true
	}
	if root.Kind != treemodel.Directory {
		return false
	}
	hasVisibleFile := false
	for _, child := range root.Children {
		childEmpty := MarkPruned(child)
		if child.Kind != treemodel.Directory {
			hasVisibleFile = true
		} else if !childEmpty {
			hasVisibleFile = true
		}
	}
	root.IsPruned = !hasVisibleFile
	return root.IsPruned
}
