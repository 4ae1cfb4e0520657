// Package sortkey orders a sibling list of entries into the deterministic
// total order the renderer depends on for stable, reproducible output.
package sortkey

import (
	"fmt"
	"sort"
	"strings"

	"github.com/water-run/treepp/internal/treemodel"
)

// Key selects the field used to order a sibling list.
type Key int

const (
	KeyName Key = iota
	KeySize
	KeyMTime
	KeyCTime
)

// ParseKey maps the --sort flag's value ("name", "size", "mtime", or
// "ctime") to a Key, rejecting anything else as a configuration error.
func ParseKey(raw string) (Key, error) {
	switch strings.ToLower(raw) {
	case "", "name":
		return KeyName, nil
	case "size":
		return KeySize, nil
	case "mtime":
		return KeyMTime, nil
	case "ctime":
		return KeyCTime, nil
	default:
		return KeyName, fmt.Errorf("sortkey: unknown sort key %q", raw)
	}
}

// Sort orders entries in place by key, then applies --reverse and finally
// --dirs-first as a stable partition, matching the documented
// sort-then-reverse-then-partition pipeline.
func Sort(entries []*treemodel.Entry, key Key, reverse, dirsFirst bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j], key)
	})
	if reverse {
		reverseInPlace(entries)
	}
	if dirsFirst {
		partitionDirsFirst(entries)
	}
}

func less(a, b *treemodel.Entry, key Key) bool {
	switch key {
	case KeySize:
		av, bv := a.SortValue(), b.SortValue()
		if av != bv {
			return av < bv
		}
	case KeyMTime:
		if !a.MTime.Equal(b.MTime) {
			return a.MTime.Before(b.MTime)
		}
	case KeyCTime:
		if !a.CTime.Equal(b.CTime) {
			return a.CTime.Before(b.CTime)
		}
	}
	return nameLess(a.Name, b.Name)
}

// nameLess is case-insensitive (ASCII-folded) lexicographic, with a
// case-sensitive tiebreak so "A" and "a" retain a stable relative order.
func nameLess(a, b string) bool {
	la, lb := asciiLower(a), asciiLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func reverseInPlace(entries []*treemodel.Entry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}

// partitionDirsFirst stably moves Directory-kind entries ahead of all
// others, preserving relative order within each group.
func partitionDirsFirst(entries []*treemodel.Entry) {
	dirs := make([]*treemodel.Entry, 0, len(entries))
	rest := make([]*treemodel.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Kind == treemodel.Directory {
			dirs = append(dirs, e)
		} else {
			rest = append(rest, e)
		}
	}
	copy(entries, dirs)
	copy(entries[len(dirs):], rest)
}
