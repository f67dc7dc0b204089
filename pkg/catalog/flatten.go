package catalog

import (
	"fmt"
	"maps"
	"slices"
)

// Separator joins path segments of flattened keys.
const Separator = "."

// Flat maps dot-joined key paths to leaf strings.
type Flat map[string]string

// Keys returns the flat keys in ascending byte order.
func (f Flat) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// Lookup returns the value stored under key, or an empty string when absent.
func (f Flat) Lookup(key string) string {
	return f[key]
}

// Flatten converts v into a Flat catalog. Node children are joined to
// prefix with Separator; a Leaf is stored under prefix itself.
// Empty nodes contribute no entries.
//
// Two paths that join to the same key, such as {"a.b": ...} next to
// {"a": {"b": ...}}, fail with ErrKeyCollision.
func Flatten(v Value, prefix string) (Flat, error) {
	result := make(Flat)
	if err := flattenInto(result, v, prefix); err != nil {
		return nil, err
	}
	return result, nil
}

func flattenInto(dst Flat, v Value, prefix string) error {
	switch t := v.(type) {
	case Leaf:
		if _, exists := dst[prefix]; exists {
			return fmt.Errorf("%w: %w: %q", ErrParse, ErrKeyCollision, prefix)
		}
		dst[prefix] = string(t)
	case Node:
		// Sorted so the reported collision is the same on every run.
		for _, key := range slices.Sorted(maps.Keys(t)) {
			fullKey := key
			if prefix != "" {
				fullKey = prefix + Separator + key
			}
			if err := flattenInto(dst, t[key], fullKey); err != nil {
				return err
			}
		}
	}
	return nil
}
