// Package serialize emits a fully-scanned tree in one of the structured
// export formats. All formats share one canonical shape: a mapping from
// child name to its subtree, with files as empty mappings, insertion order
// equal to the renderer's sibling order rather than alphabetic. All
// formats require batch mode since they need the complete tree.
package serialize

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/water-run/treepp/internal/treemodel"
)

// Format selects the output encoding.
type Format int

const (
	FormatTXT Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
)

// ParseFormatFromExtension maps an --output file extension to a Format,
// returning an error for anything unrecognized (a configuration error at
// the CLI boundary).
func ParseFormatFromExtension(ext string) (Format, error) {
	switch ext {
	case ".txt", "":
		return FormatTXT, nil
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatTXT, fmt.Errorf("serialize: unsupported output extension %q", ext)
	}
}

// Marshal renders root's subtree as format's wire representation. lines is
// the already-rendered plain-text body, used verbatim for FormatTXT.
func Marshal(root *treemodel.Entry, format Format, lines []string) ([]byte, error) {
	switch format {
	case FormatTXT:
		var buf bytes.Buffer
		for _, line := range lines {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return marshalJSON(root)
	case FormatYAML:
		node := toOrderedNode(root)
		return yaml.Marshal(node)
	case FormatTOML:
		return toTOMLMap(root).MarshalTOML()
	default:
		return nil, fmt.Errorf("serialize: unknown format %d", format)
	}
}
