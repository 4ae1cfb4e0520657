package render

// LineOptions controls how a single Entry is turned into a display line:
// indent prefix, optional quoting, name-or-full-path, and the trailing
// metadata block.
type LineOptions struct {
	Glyphs        Glyphs
	NoIndent      bool
	FullPath      bool
	Quote         bool
	ShowSize      bool
	HumanReadable bool
	ShowDate      bool

	// Subdue styles a composed line, applied only to "Other"-kind
	// entries (sockets, devices, unresolved symlinks - anything neither
	// a plain file nor a directory). Nil means no styling, matching a
	// non-terminal destination.
	Subdue func(string) string
}

// Options is the full renderer configuration for one run.
type Options struct {
	Line LineOptions

	// Banner holds the two opaque header lines from internal/banner;
	// nil/empty when --no-win-banner is set or capture is unavailable.
	Banner      []string
	NoWinBanner bool

	// DisplayRoot is the third header line: "X:." or the uppercased
	// absolute path.
	DisplayRoot string

	Report bool
}

// effectiveShowSize reports whether a size column should be rendered:
// --human-readable implies --size per the resolved Open Question.
func (o LineOptions) effectiveShowSize() bool {
	return o.ShowSize || o.HumanReadable
}
