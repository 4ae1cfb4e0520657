package render

import (
	"path"

	"github.com/water-run/treepp/internal/treemodel"
)

// StreamRenderer renders one directory at a time as the streaming scanner
// walks depth-first, without materializing the tree.
type StreamRenderer struct {
	opts  Options
	stack []streamFrame
}

type streamFrame struct {
	prefix string
	path   string
}

// NewStreamRenderer constructs a renderer for one streaming run and
// returns the header lines alongside it (callers emit these once, before
// any EnterDir/File calls).
func NewStreamRenderer(opts Options) (*StreamRenderer, []string) {
	return &StreamRenderer{opts: opts, stack: []streamFrame{{prefix: "", path: opts.DisplayRoot}}}, Header(opts)
}

// EnterDir emits e's own line and pushes a new frame so subsequent File/
// EnterDir calls at the next depth indent beneath it. isLast indicates
// whether e is the last entry among its already-known siblings.
func (r *StreamRenderer) EnterDir(e *treemodel.Entry, isLast bool) []string {
	frame := r.currentFrame()
	line := r.emit(frame, e, isLast)

	childPrefix := frame.prefix + r.continuation(isLast)
	r.stack = append(r.stack, streamFrame{
		prefix: childPrefix,
		path:   path.Join(frame.path, e.Name),
	})
	return []string{line}
}

// LeaveDir pops the frame pushed by the matching EnterDir. It returns no
// lines of its own; it exists so callers have a symmetric call pair to
// drive indentation bookkeeping.
func (r *StreamRenderer) LeaveDir() []string {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// File emits one file's line at the current depth.
func (r *StreamRenderer) File(e *treemodel.Entry, isLast bool) []string {
	frame := r.currentFrame()
	return []string{r.emit(frame, e, isLast)}
}

func (r *StreamRenderer) currentFrame() *streamFrame {
	return &r.stack[len(r.stack)-1]
}

func (r *StreamRenderer) continuation(isLast bool) string {
	if r.opts.Line.NoIndent {
		return r.opts.Line.Glyphs.Blank
	}
	if isLast {
		return r.opts.Line.Glyphs.Blank
	}
	return r.opts.Line.Glyphs.Vertical
}

func (r *StreamRenderer) emit(frame *streamFrame, e *treemodel.Entry, isLast bool) string {
	lineOpts := r.opts.Line
	connector := lineOpts.Glyphs.Branch
	if isLast {
		connector = lineOpts.Glyphs.Last
	}
	if lineOpts.NoIndent {
		connector = lineOpts.Glyphs.Blank
		if e.Kind != treemodel.Directory {
			connector += "  "
		}
	}

	displayName := e.Name
	if lineOpts.FullPath {
		displayName = path.Join(frame.path, e.Name)
	}
	name := nameSegment(displayName, lineOpts.Quote)
	metadata := metadataSegment(e, lineOpts)
	line := composeLine(frame.prefix+connector, name, metadata)
	return applySubdue(line, e.Kind, lineOpts)
}
