package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a node of a nested catalog: either a Leaf or a Node.
type Value interface {
	isValue()
}

// Leaf holds a single translation string.
type Leaf string

// Node maps child keys to nested values.
type Node map[string]Value

func (Leaf) isValue() {}
func (Node) isValue() {}

// FromAny converts a decoded JSON value into a catalog Value.
// Mappings become Nodes and everything else becomes a Leaf:
// numbers keep their literal text, booleans become "true" or "false",
// null becomes an empty string and sequences keep their compact JSON form.
func FromAny(v any) Value {
	switch t := v.(type) {
	case map[string]any:
		node := make(Node, len(t))
		for key, child := range t {
			node[key] = FromAny(child)
		}
		return node
	case string:
		return Leaf(t)
	case nil:
		return Leaf("")
	case json.Number:
		return Leaf(t.String())
	case bool:
		return Leaf(strconv.FormatBool(t))
	case []any:
		if data, err := json.Marshal(t); err == nil {
			return Leaf(data)
		}
		return Leaf(fmt.Sprintf("%v", t))
	default:
		return Leaf(fmt.Sprintf("%v", t))
	}
}

// Leaves returns the number of leaf values reachable from v.
func Leaves(v Value) int {
	switch t := v.(type) {
	case Leaf:
		return 1
	case Node:
		n := 0
		for _, child := range t {
			n += Leaves(child)
		}
		return n
	default:
		return 0
	}
}
