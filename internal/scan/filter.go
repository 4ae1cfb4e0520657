package scan

import (
	"path"

	"github.com/water-run/treepp/internal/gitignore"
	"github.com/water-run/treepp/internal/pattern"
	"github.com/water-run/treepp/internal/treemodel"
)

// FilterConfig is the subset of config.Config the scanner's per-entry
// filter pipeline needs; both the batch and streaming scanners share it.
type FilterConfig struct {
	IncludeFiles    bool
	ExcludePatterns []*pattern.Matcher
	IncludePatterns []*pattern.Matcher
	UseGitignore    bool
	Level           int // negative means unlimited
}

// Decision is the outcome of running one entry through the filter
// pipeline: whether to keep it, and (for directories) whether its children
// should be scanned at all.
type Decision struct {
	Keep        bool
	DescendInto bool
}

// Evaluate runs one entry through the documented filter order: kind
// (--files), --exclude, --include, --gitignore, then the level limit.
// relPath is root-relative, using "/" separators regardless of OS.
func Evaluate(e *treemodel.Entry, relPath string, cfg FilterConfig, chain gitignore.Chain) Decision {
	if !cfg.IncludeFiles && e.Kind != treemodel.Directory {
		return Decision{Keep: false}
	}

	for _, excluder := range cfg.ExcludePatterns {
		if matchPattern(excluder, e.Name, relPath) {
			return Decision{Keep: false}
		}
	}

	if len(cfg.IncludePatterns) > 0 && e.Kind != treemodel.Directory {
		matched := false
		for _, includer := range cfg.IncludePatterns {
			if matchPattern(includer, e.Name, relPath) {
				matched = true
				break
			}
		}
		if !matched {
			return Decision{Keep: false}
		}
	}

	if cfg.UseGitignore && chain.IsIgnored(relPath, e.Kind == treemodel.Directory) {
		return Decision{Keep: false}
	}

	if cfg.Level >= 0 && e.Depth > cfg.Level {
		return Decision{Keep: false}
	}

	descend := e.Kind == treemodel.Directory && (cfg.Level < 0 || e.Depth < cfg.Level)
	return Decision{Keep: true, DescendInto: descend}
}

func matchPattern(m *pattern.Matcher, name, relPath string) bool {
	if m.HasSeparator() {
		return m.MatchPath(relPath)
	}
	return m.MatchName(name)
}

// JoinRelPath builds a "/"-separated root-relative path for filter and
// gitignore evaluation, independent of the host path separator.
func JoinRelPath(parentRelPath, name string) string {
	if parentRelPath == "" {
		return name
	}
	return path.Join(parentRelPath, name)
}
