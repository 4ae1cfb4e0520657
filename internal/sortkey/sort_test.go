package sortkey

import (
	"testing"
	"time"

	"github.com/water-run/treepp/internal/treemodel"
)

func entry(name string, kind treemodel.Kind, size int64, mtime time.Time) *treemodel.Entry {
	return &treemodel.Entry{Name: name, Kind: kind, Size: size, MTime: mtime}
}

func names(entries []*treemodel.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSortByNameCaseInsensitiveWithTiebreak(t *testing.T) {
	entries := []*treemodel.Entry{
		entry("banana", treemodel.File, 0, time.Time{}),
		entry("Apple", treemodel.File, 0, time.Time{}),
		entry("apple", treemodel.File, 0, time.Time{}),
	}
	Sort(entries, KeyName, false, false)
	got := names(entries)
	want := []string{"Apple", "apple", "banana"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSortBySizeTiesBrokenByName(t *testing.T) {
	entries := []*treemodel.Entry{
		entry("b", treemodel.File, 10, time.Time{}),
		entry("a", treemodel.File, 10, time.Time{}),
		entry("c", treemodel.File, 5, time.Time{}),
	}
	Sort(entries, KeySize, false, false)
	got := names(entries)
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestReverse(t *testing.T) {
	entries := []*treemodel.Entry{
		entry("a", treemodel.File, 0, time.Time{}),
		entry("b", treemodel.File, 0, time.Time{}),
	}
	Sort(entries, KeyName, true, false)
	got := names(entries)
	if got[0] != "b" || got[1] != "a" {
		t.Fatalf("got %v", got)
	}
}

func TestDirsFirstStablePartition(t *testing.T) {
	entries := []*treemodel.Entry{
		entry("a.txt", treemodel.File, 0, time.Time{}),
		entry("sub", treemodel.Directory, 0, time.Time{}),
		entry("b.txt", treemodel.File, 0, time.Time{}),
		entry("zdir", treemodel.Directory, 0, time.Time{}),
	}
	Sort(entries, KeyName, false, true)
	got := names(entries)
	want := []string{"sub", "zdir", "a.txt", "b.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParseKeyAcceptsDocumentedValues(t *testing.T) {
	cases := map[string]Key{"": KeyName, "name": KeyName, "size": KeySize, "mtime": KeyMTime, "ctime": KeyCTime, "SIZE": KeySize}
	for raw, want := range cases {
		got, err := ParseKey(raw)
		if err != nil {
			t.Fatalf("ParseKey(%q) error: %v", raw, err)
		}
		if got != want {
			t.Errorf("ParseKey(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestParseKeyRejectsUnknownValue(t *testing.T) {
	if _, err := ParseKey("bogus"); err == nil {
		t.Fatal("expected an error for an unknown sort key")
	}
}

func TestSortBySizeUsesDiskUsageForDirectories(t *testing.T) {
	dir := entry("dir", treemodel.Directory, 4096, time.Time{})
	dir.DiskUsage = 1
	file := entry("file", treemodel.File, 50, time.Time{})
	entries := []*treemodel.Entry{file, dir}
	Sort(entries, KeySize, false, false)
	got := names(entries)
	if got[0] != "dir" || got[1] != "file" {
		t.Fatalf("expected dir (disk usage 1) before file (50), got %v", got)
	}
}
