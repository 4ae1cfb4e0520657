package serialize

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/water-run/treepp/internal/treemodel"
)

// tomlTree holds the canonical ordered child-name -> subtree shape and
// writes itself out by hand (MarshalTOML), so the wire order is the
// renderer's sibling order instead of the sorted order a Go map would get
// from a TOML library's map encoding.
type tomlTree struct {
	names    []string
	children []*tomlTree
}

func toTOMLMap(e *treemodel.Entry) *tomlTree {
	tree := &tomlTree{}
	for _, child := range e.Children {
		if child.Kind == treemodel.Directory && child.IsPruned {
			continue
		}
		tree.names = append(tree.names, child.Name)
		if child.Kind == treemodel.Directory {
			tree.children = append(tree.children, toTOMLMap(child))
		} else {
			tree.children = append(tree.children, &tomlTree{})
		}
	}
	return tree
}

// MarshalTOML writes this tree as a TOML document: one `"name" = {...}`
// line per top-level entry, in insertion order, whose value is that
// entry's subtree as nested inline tables; leaf (file) entries become an
// empty inline table.
func (t *tomlTree) MarshalTOML() ([]byte, error) {
	var buf bytes.Buffer
	for i, name := range t.names {
		buf.WriteString(quoteTOMLBasicString(name))
		buf.WriteString(" = ")
		if err := t.children[i].writeInline(&buf); err != nil {
			return nil, fmt.Errorf("serialize: toml child %q: %w", name, err)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func (t *tomlTree) writeInline(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, name := range t.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(quoteTOMLBasicString(name))
		buf.WriteByte('=')
		if err := t.children[i].writeInline(buf); err != nil {
			return fmt.Errorf("serialize: toml child %q: %w", name, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

// quoteTOMLBasicString renders name as a TOML basic string, escaping
// backslashes, double quotes, and control characters per the basic-string
// grammar.
func quoteTOMLBasicString(name string) string {
	var out strings.Builder
	out.WriteByte('"')
	for _, r := range name {
		switch r {
		case '\\':
			out.WriteString(`\\`)
		case '"':
			out.WriteString(`\"`)
		case '\n':
			out.WriteString(`\n`)
		case '\t':
			out.WriteString(`\t`)
		case '\r':
			out.WriteString(`\r`)
		default:
			out.WriteRune(r)
		}
	}
	out.WriteByte('"')
	return out.String()
}
