package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	yamlNullTag  = "!!null"
	yamlMergeTag = "!!merge"
)

// FromYAML converts a parsed YAML node into a catalog Value. Scalars keep
// their literal text, so "1.0" and "2024-01-02" reach the catalog as
// written; null becomes an empty string. Mapping keys that resolve to the
// same text, such as 1 and "1", fail with ErrKeyCollision.
func FromYAML(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Leaf(""), nil
		}
		return FromYAML(n.Content[0])
	case yaml.AliasNode:
		return FromYAML(n.Alias)
	case yaml.MappingNode:
		return yamlMapping(n)
	case yaml.SequenceNode:
		return yamlSequence(n)
	case yaml.ScalarNode:
		if n.ShortTag() == yamlNullTag {
			return Leaf(""), nil
		}
		return Leaf(n.Value), nil
	default:
		return Leaf(""), nil
	}
}

func yamlMapping(n *yaml.Node) (Value, error) {
	node := make(Node, len(n.Content)/2)

	// Merged entries come first so explicit keys override them.
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].ShortTag() != yamlMergeTag {
			continue
		}
		if err := yamlMerge(node, n.Content[i+1]); err != nil {
			return nil, err
		}
	}

	explicit := make(map[string]struct{}, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]
		if keyNode.ShortTag() == yamlMergeTag {
			continue
		}
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: mapping key must be a scalar", ErrParse, keyNode.Line)
		}
		key := keyNode.Value
		if _, exists := explicit[key]; exists {
			return nil, fmt.Errorf("%w: %w: line %d: %q", ErrParse, ErrKeyCollision, keyNode.Line, key)
		}
		explicit[key] = struct{}{}

		value, err := FromYAML(valueNode)
		if err != nil {
			return nil, err
		}
		node[key] = value
	}

	return node, nil
}

func yamlMerge(dst Node, src *yaml.Node) error {
	if src.Kind == yaml.AliasNode {
		src = src.Alias
	}

	sources := []*yaml.Node{src}
	if src.Kind == yaml.SequenceNode {
		sources = src.Content
	}

	for _, s := range sources {
		merged, err := FromYAML(s)
		if err != nil {
			return err
		}
		m, ok := merged.(Node)
		if !ok {
			return fmt.Errorf("%w: line %d: merge value must be a mapping", ErrParse, s.Line)
		}
		for key, value := range m {
			if _, exists := dst[key]; !exists {
				dst[key] = value
			}
		}
	}
	return nil
}

// yamlSequence renders a sequence as compact JSON, like JSON arrays.
func yamlSequence(n *yaml.Node) (Value, error) {
	var raw any
	if err := n.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: line %d: %s", ErrParse, n.Line, err)
	}
	if data, err := json.Marshal(raw); err == nil {
		return Leaf(data), nil
	}
	return Leaf(fmt.Sprintf("%v", raw)), nil
}
