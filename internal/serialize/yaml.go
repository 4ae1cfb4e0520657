package serialize

import (
	"gopkg.in/yaml.v3"

	"github.com/water-run/treepp/internal/treemodel"
)

// toOrderedNode builds a yaml.v3 mapping node directly (rather than
// marshaling a Go map, which gopkg.in/yaml.v3 would otherwise re-sort) so
// the emitted YAML preserves the renderer's sibling order.
func toOrderedNode(e *treemodel.Entry) *yaml.Node {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, child := range e.Children {
		if child.Kind == treemodel.Directory && child.IsPruned {
			continue
		}
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: child.Name}
		var valueNode *yaml.Node
		if child.Kind == treemodel.Directory {
			valueNode = toOrderedNode(child)
		} else {
			valueNode = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		}
		mapping.Content = append(mapping.Content, keyNode, valueNode)
	}
	return mapping
}
