package serialize

import (
	"bytes"
	"encoding/json"

	"github.com/water-run/treepp/internal/treemodel"
)

// orderedNode is the canonical child-name -> subtree shape, keeping
// insertion order (the renderer's sibling order) instead of the
// alphabetical order a plain map would impose under encoding/json.
type orderedNode struct {
	names    []string
	children []*orderedNode
}

func toOrderedTree(e *treemodel.Entry) *orderedNode {
	node := &orderedNode{}
	for _, child := range e.Children {
		if child.Kind == treemodel.Directory && child.IsPruned {
			continue
		}
		node.names = append(node.names, child.Name)
		if child.Kind == treemodel.Directory {
			node.children = append(node.children, toOrderedTree(child))
		} else {
			node.children = append(node.children, &orderedNode{})
		}
	}
	return node
}

// MarshalJSON writes {"name": {...}, ...} preserving insertion order by
// hand-assembling the object instead of delegating to a Go map.
func (n *orderedNode) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range n.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		valueBytes, err := json.Marshal(n.children[i])
		if err != nil {
			return nil, err
		}
		buf.Write(valueBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalJSON(root *treemodel.Entry) ([]byte, error) {
	tree := toOrderedTree(root)
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(tree); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
