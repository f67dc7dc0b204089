package catalog

import (
	"fmt"
	"maps"
	"slices"
)

// Catalog is a loaded translation document keyed by language identifier.
// It is never mutated after loading.
type Catalog struct {
	root Node
}

// New wraps root as a Catalog.
func New(root Node) *Catalog {
	if root == nil {
		root = Node{}
	}
	return &Catalog{root: root}
}

// Languages returns the top-level section identifiers in ascending order.
func (c *Catalog) Languages() []string {
	return slices.Sorted(maps.Keys(c.root))
}

// Section returns the nested mapping stored under one of the given
// identifiers. The first identifier present wins, so callers can pass a
// verbatim name followed by its canonical spelling.
func (c *Catalog) Section(names ...string) (Node, error) {
	for _, name := range names {
		value, ok := c.root[name]
		if !ok {
			continue
		}
		node, ok := value.(Node)
		if !ok {
			return nil, fmt.Errorf("%w: %w: %q", ErrParse, ErrInvalidSection, name)
		}
		return node, nil
	}
	return nil, fmt.Errorf("%w: %w: %q", ErrParse, ErrMissingSection, names)
}

// Flatten returns the flat form of the section stored under names.
func (c *Catalog) Flatten(names ...string) (Flat, error) {
	node, err := c.Section(names...)
	if err != nil {
		return nil, err
	}
	return Flatten(node, "")
}
