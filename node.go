package jsondoc

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// Kind tags the three shapes a tree value can take.
type Kind uint8

const (
	// KindScalar holds a string, number, boolean or null.
	KindScalar Kind = iota
	// KindList holds an ordered sequence of nodes.
	KindList
	// KindMap holds string keys in insertion order.
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is one value of a JSON tree. The zero value is a JSON null.
//
// Maps keep their keys in insertion order; overwriting a key keeps its
// position. Nodes are mutable and are not safe for concurrent mutation.
type Node struct {
	kind   Kind
	scalar any
	items  []*Node
	keys   []string
	fields map[string]*Node
}

// NewNull returns a JSON null node.
func NewNull() *Node {
	return &Node{}
}

// NewScalar wraps a scalar payload: nil, bool, string, json.Number or a Go
// numeric type. Composite values belong in ValueOf.
func NewScalar(v any) *Node {
	return &Node{kind: KindScalar, scalar: v}
}

// NewList returns a list holding items. Nil items become nulls.
func NewList(items ...*Node) *Node {
	n := &Node{kind: KindList, items: make([]*Node, 0, len(items))}
	for _, item := range items {
		n.items = append(n.items, orNull(item))
	}
	return n
}

// NewMap returns an empty map.
func NewMap() *Node {
	return &Node{kind: KindMap, fields: make(map[string]*Node)}
}

// ValueOf converts a native Go value into a tree. Maps of type
// map[string]any are inserted in sorted key order; types without a direct
// mapping are marshalled to JSON and parsed back.
func ValueOf(v any) (*Node, error) {
	return valueOf(v, 0)
}

func valueOf(v any, depth int) (*Node, error) {
	if depth > MaxNestingDepth {
		return nil, newDepthLimitError("from_value", MaxNestingDepth)
	}
	switch val := v.(type) {
	case *Node:
		if val == nil {
			return NewNull(), nil
		}
		return val.Clone(), nil
	case nil, bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return NewScalar(val), nil
	case []any:
		list := NewList()
		for _, item := range val {
			child, err := valueOf(item, depth+1)
			if err != nil {
				return nil, err
			}
			list.items = append(list.items, child)
		}
		return list, nil
	case map[string]any:
		m := NewMap()
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child, err := valueOf(val[k], depth+1)
			if err != nil {
				return nil, err
			}
			m.setField(k, child)
		}
		return m, nil
	default:
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(val)
		if err != nil {
			return nil, newOperationError("from_value", fmt.Sprintf("unsupported value of type %T", v), ErrTypeMismatch)
		}
		return Parse(data)
	}
}

// MustValueOf is like ValueOf but panics on error.
func MustValueOf(v any) *Node {
	n, err := ValueOf(v)
	if err != nil {
		panic(err)
	}
	return n
}

func orNull(n *Node) *Node {
	if n == nil {
		return NewNull()
	}
	return n
}

// Kind reports the node's tag.
func (n *Node) Kind() Kind { return n.kind }

func (n *Node) IsScalar() bool { return n.kind == KindScalar }
func (n *Node) IsList() bool   { return n.kind == KindList }
func (n *Node) IsMap() bool    { return n.kind == KindMap }
func (n *Node) IsNull() bool   { return n.kind == KindScalar && n.scalar == nil }

// Value returns the scalar payload, or nil for lists and maps.
func (n *Node) Value() any {
	if n.kind != KindScalar {
		return nil
	}
	return n.scalar
}

// Str returns the payload of a string scalar.
func (n *Node) Str() (string, bool) {
	s, ok := n.Value().(string)
	return s, ok
}

// Float returns the payload of a numeric scalar as a float64.
func (n *Node) Float() (float64, bool) {
	return toFloat(n.Value())
}

// Bool returns the payload of a boolean scalar.
func (n *Node) Bool() (bool, bool) {
	b, ok := n.Value().(bool)
	return b, ok
}

// Len returns the number of entries of a list or map, and 0 for scalars.
func (n *Node) Len() int {
	switch n.kind {
	case KindList:
		return len(n.items)
	case KindMap:
		return len(n.keys)
	}
	return 0
}

// Keys returns a copy of the map's keys in order.
func (n *Node) Keys() []string {
	if n.kind != KindMap {
		return nil
	}
	return slices.Clone(n.keys)
}

// Items returns a copy of the list's elements.
func (n *Node) Items() []*Node {
	if n.kind != KindList {
		return nil
	}
	return slices.Clone(n.items)
}

// Field looks up an own key of a map. A key holding null is present.
func (n *Node) Field(key string) (*Node, bool) {
	if n.kind != KindMap {
		return nil, false
	}
	v, ok := n.fields[key]
	return v, ok
}

// SetField assigns key on a map, appending the key when it is new.
func (n *Node) SetField(key string, v *Node) error {
	if n.kind != KindMap {
		return newOperationError("set_field", "node is a "+n.kind.String()+", not a map", ErrTypeMismatch)
	}
	n.setField(key, orNull(v))
	return nil
}

func (n *Node) setField(key string, v *Node) {
	if _, ok := n.fields[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = v
}

// DeleteField removes key from a map and reports whether it was present.
func (n *Node) DeleteField(key string) bool {
	if n.kind != KindMap {
		return false
	}
	if _, ok := n.fields[key]; !ok {
		return false
	}
	delete(n.fields, key)
	n.keys = slices.DeleteFunc(n.keys, func(k string) bool { return k == key })
	return true
}

// Index returns element i of a list.
func (n *Node) Index(i int) (*Node, bool) {
	if n.kind != KindList || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// SetIndex replaces element i of a list; i == Len() appends.
func (n *Node) SetIndex(i int, v *Node) error {
	if n.kind != KindList {
		return newOperationError("set_index", "node is a "+n.kind.String()+", not a list", ErrTypeMismatch)
	}
	switch {
	case i >= 0 && i < len(n.items):
		n.items[i] = orNull(v)
	case i == len(n.items):
		n.items = append(n.items, orNull(v))
	default:
		return newOperationError("set_index",
			fmt.Sprintf("index %d outside list of length %d", i, len(n.items)), ErrIndexOutOfRange)
	}
	return nil
}

// Append adds elements to the end of a list.
func (n *Node) Append(vs ...*Node) error {
	if n.kind != KindList {
		return newOperationError("append", "node is a "+n.kind.String()+", not a list", ErrTypeMismatch)
	}
	for _, v := range vs {
		n.items = append(n.items, orNull(v))
	}
	return nil
}

// DeleteIndex removes element i of a list, shifting later elements down.
func (n *Node) DeleteIndex(i int) bool {
	if n.kind != KindList || i < 0 || i >= len(n.items) {
		return false
	}
	n.items = slices.Delete(n.items, i, i+1)
	return true
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{kind: n.kind, scalar: n.scalar}
	switch n.kind {
	case KindList:
		out.items = make([]*Node, len(n.items))
		for i, item := range n.items {
			out.items[i] = item.Clone()
		}
	case KindMap:
		out.keys = slices.Clone(n.keys)
		out.fields = make(map[string]*Node, len(n.fields))
		for k, v := range n.fields {
			out.fields[k] = v.Clone()
		}
	}
	return out
}

// replaceWith overwrites n in place with a deep copy of src, so n and src
// never share containers afterwards.
func (n *Node) replaceWith(src *Node) {
	*n = *orNull(src).Clone()
}

// Interface converts the tree into map[string]any, []any and scalar payloads.
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindList:
		out := make([]any, len(n.items))
		for i, item := range n.items {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(n.keys))
		for _, k := range n.keys {
			out[k] = n.fields[k].Interface()
		}
		return out
	}
	return n.scalar
}

// Equal reports structural equality, including map key order.
// Numbers compare by value regardless of their Go type.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindList:
		return slices.EqualFunc(n.items, other.items, (*Node).Equal)
	case KindMap:
		if !slices.Equal(n.keys, other.keys) {
			return false
		}
		for _, k := range n.keys {
			if !n.fields[k].Equal(other.fields[k]) {
				return false
			}
		}
		return true
	}
	return scalarEqual(n.scalar, other.scalar)
}

func scalarEqual(a, b any) bool {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum || bNum {
		return aNum && bNum && fa == fb
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), !math.IsNaN(float64(x))
	case float64:
		return x, !math.IsNaN(x)
	}
	return 0, false
}
