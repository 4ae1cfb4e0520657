package gitignore

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileName is the conventional ignore-file name consulted in every scanned
// directory when --gitignore is set.
const FileName = ".gitignore"

// Load reads dir's .gitignore file (if any) through fs and parses it into a
// RuleSet anchored at anchorRelPath. A missing file is not an error: it
// yields an empty RuleSet. An unreadable-but-present file is reported to
// warn (non-fatal, matching the engine's failure semantics) and also
// yields an empty RuleSet.
func Load(fs afero.Fs, dir, anchorRelPath string, warn func(string, error)) RuleSet {
	path := filepath.Join(dir, FileName)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if !os.IsNotExist(err) {
			warn(path, err)
		}
		return RuleSet{Anchor: anchorRelPath}
	}
	set, parseErr := Parse(data, anchorRelPath)
	if parseErr != nil {
		warn(path, parseErr)
		return RuleSet{Anchor: anchorRelPath}
	}
	return set
}
