// Package cliadapt rewrites CMD-dialect (`/X`, case-insensitive) tokens
// into their GNU long-flag equivalent before cobra/pflag ever sees them.
// GNU long flags and POSIX short flags already parse natively under
// pflag's default GNU-getopt mode; only the CMD dialect needs a
// pre-processing pass.
package cliadapt

import "strings"

// cmdToLong maps every CMD-style switch from the option table to the
// canonical long flag pflag is configured with. Keys are compared
// case-insensitively.
//
// "/O" resolves to --output, not --dirs-first: the option table assigns
// /O to --output and only gives --dirs-first a POSIX short form (-O,
// case-sensitive); CMD's case-insensitive matching can't tell "/o" from
// "/O" apart, so --dirs-first is reachable there only by its long form.
var cmdToLong = map[string]string{
	"/?":  "--help",
	"/v":  "--version",
	"/b":  "--batch",
	"/a":  "--ascii",
	"/f":  "--files",
	"/fp": "--full-path",
	"/hr": "--human-readable",
	"/ni": "--no-indent",
	"/r":  "--reverse",
	"/s":  "--size",
	"/dt": "--date",
	"/x":  "--exclude",
	"/l":  "--level",
	"/m":  "--include",
	"/du": "--disk-usage",
	"/rp": "--report",
	"/p":  "--prune",
	"/nb": "--no-win-banner",
	"/si": "--silent",
	"/o":  "--output",
	"/t":  "--thread",
	"/g":  "--gitignore",
	"/k":  "--sort",
	"/q":  "--quote",
	"/ic": "--ignore-case",
}

// dashToLong maps single-dash, multi-letter aliases that pflag's
// single-rune shorthand can't express directly (pflag shorthands are
// exactly one character). Unlike cmdToLong, these are matched
// case-sensitively, matching GNU single-dash alias conventions.
var dashToLong = map[string]string{
	"-iC": "--ignore-case",
}

// Normalize rewrites every CMD-dialect argument in args into its GNU long
// form, leaving GNU long flags, POSIX short flags, `--` terminators, and
// bare positional arguments untouched. A value token following a
// recognized switch (e.g. the "3" in "/L 3") is passed through verbatim,
// since pflag consumes it as the rewritten flag's argument.
func Normalize(args []string) []string {
	normalized := make([]string, 0, len(args))
	for _, arg := range args {
		if rewritten, ok := rewriteCMDToken(arg); ok {
			normalized = append(normalized, rewritten)
			continue
		}
		if long, ok := dashToLong[arg]; ok {
			normalized = append(normalized, long)
			continue
		}
		normalized = append(normalized, arg)
	}
	return normalized
}

func rewriteCMDToken(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "/") || len(arg) < 2 {
		return "", false
	}
	long, ok := cmdToLong[strings.ToLower(arg)]
	return long, ok
}
