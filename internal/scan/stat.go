package scan

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/water-run/treepp/internal/treemodel"
)

// statEntry reads one directory entry's metadata and builds the
// corresponding Entry. Symlinks and special files count as Other and are
// treated like files for display, matching the data model's definition of
// Kind.
func statEntry(fs afero.Fs, dirPath string, dirEntry os.DirEntry, depth int) (*treemodel.Entry, error) {
	info, err := dirEntry.Info()
	if err != nil {
		fullPath := filepath.Join(dirPath, dirEntry.Name())
		info, err = fs.Stat(fullPath)
		if err != nil {
			return nil, err
		}
	}

	kind := treemodel.File
	switch {
	case info.IsDir():
		kind = treemodel.Directory
	case info.Mode()&os.ModeSymlink != 0:
		kind = treemodel.Other
	case !info.Mode().IsRegular():
		kind = treemodel.Other
	}

	return &treemodel.Entry{
		Name:  info.Name(),
		Kind:  kind,
		Size:  info.Size(),
		MTime: info.ModTime(),
		CTime: creationTime(info),
		Depth: depth,
	}, nil
}

// readDirSorted enumerates dirPath through fs. Directory entries are
// returned in the filesystem's native order; ordering into the
// deterministic sibling order is the sorter's job, applied downstream.
func readDirSorted(fs afero.Fs, dirPath string) ([]os.DirEntry, error) {
	file, err := fs.Open(dirPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	infos, err := file.Readdir(-1)
	if err != nil {
		return nil, err
	}
	entries := make([]os.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = dirEntryFromInfo(info)
	}
	return entries, nil
}

type dirEntryFromInfoWrapper struct{ os.FileInfo }

func (w dirEntryFromInfoWrapper) Type() os.FileMode          { return w.FileInfo.Mode().Type() }
func (w dirEntryFromInfoWrapper) Info() (os.FileInfo, error) { return w.FileInfo, nil }

func dirEntryFromInfo(info os.FileInfo) os.DirEntry {
	return dirEntryFromInfoWrapper{info}
}
