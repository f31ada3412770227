package jsondoc

import (
	"fmt"
	"strings"

	"github.com/cybergodev/jsondoc/internal"
)

// Accessor reads and writes tree values by delimited address.
//
// An address such as "user.tags.0" is split on the delimiter into tokens.
// Map tokens name own keys; list tokens are canonical non-negative indexes.
// Splitting stops at the first empty token, so "a..b", ".a" and "a." all
// address less than they spell out. Only the empty token ends an address;
// "0" is an ordinary token and reaches list index 0.
type Accessor struct {
	delimiter string
}

var defaultAccessor = NewAccessor(DefaultDelimiter)

// NewAccessor returns an accessor splitting addresses on delimiter.
// An empty delimiter selects DefaultDelimiter.
func NewAccessor(delimiter string) *Accessor {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return &Accessor{delimiter: delimiter}
}

// Delimiter returns the address separator.
func (a *Accessor) Delimiter() string {
	return a.delimiter
}

// tokenize splits address and truncates at the first empty token.
func (a *Accessor) tokenize(address string) []string {
	parts := strings.Split(address, a.delimiter)
	for i, part := range parts {
		if part == "" {
			return parts[:i]
		}
	}
	return parts
}

// Get returns the node at address, or def when any step is missing or
// passes through a scalar. The returned node is live: mutating it mutates
// source.
func (a *Accessor) Get(source *Node, address string, def *Node) *Node {
	n, ok := a.resolve(source, a.tokenize(address))
	if !ok {
		return def
	}
	return n
}

// Exists reports whether every token of address resolves.
func (a *Accessor) Exists(source *Node, address string) bool {
	_, ok := a.resolve(source, a.tokenize(address))
	return ok
}

func (a *Accessor) resolve(source *Node, tokens []string) (*Node, bool) {
	if source == nil {
		return nil, false
	}
	cur := source
	for _, key := range tokens {
		next, ok := child(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// child steps from a container to the entry named by key.
func child(n *Node, key string) (*Node, bool) {
	switch n.kind {
	case KindMap:
		return n.Field(key)
	case KindList:
		i, ok := internal.ParseAndValidateIndex(key, len(n.items))
		if !ok {
			return nil, false
		}
		return n.items[i], true
	}
	return nil, false
}

// Set writes value at address, creating empty maps for missing
// intermediate steps. It fails with ErrTypeMismatch when a step passes
// through a scalar and with ErrIndexOutOfRange when a list token is not an
// existing index or the append position. A nil value stores null; an
// address without tokens overwrites source in place with a copy of value.
//
// Value is stored as is, so later changes to it show through source. When
// value is source itself or one of the maps and lists on the way to address,
// a copy is stored instead, which keeps the tree acyclic.
func (a *Accessor) Set(source *Node, address string, value *Node) error {
	if source == nil {
		return newPathError("set", address, "source tree is nil", ErrTypeMismatch)
	}
	value = orNull(value)
	tokens := a.tokenize(address)
	if len(tokens) == 0 {
		source.replaceWith(value)
		return nil
	}

	cur := source
	ancestor := value == source
	last := len(tokens) - 1
	for i, key := range tokens[:last] {
		next, err := vivify(cur, key)
		if err != nil {
			return wrapSetError(address, strings.Join(tokens[:i+1], a.delimiter), err)
		}
		cur = next
		ancestor = ancestor || value == cur
	}
	if ancestor {
		value = value.Clone()
	}
	if err := assign(cur, tokens[last], value); err != nil {
		return wrapSetError(address, strings.Join(tokens, a.delimiter), err)
	}
	return nil
}

// vivify returns the entry named by key, creating an empty map when absent.
func vivify(n *Node, key string) (*Node, error) {
	if existing, ok := child(n, key); ok {
		return existing, nil
	}
	created := NewMap()
	if err := assign(n, key, created); err != nil {
		return nil, err
	}
	return created, nil
}

func assign(n *Node, key string, value *Node) error {
	switch n.kind {
	case KindMap:
		n.setField(key, value)
		return nil
	case KindList:
		i, ok := internal.ParseIndex(key)
		if !ok {
			return fmt.Errorf("token %q is not a list index: %w", key, ErrIndexOutOfRange)
		}
		return n.SetIndex(i, value)
	}
	return fmt.Errorf("cannot descend into scalar with token %q: %w", key, ErrTypeMismatch)
}

func wrapSetError(address, at string, err error) error {
	return &DocError{
		Op:      "set",
		Path:    address,
		Message: fmt.Sprintf("at %q: %v", at, err),
		Err:     err,
	}
}

// Remove deletes the entry at address and reports whether it existed.
// The last token names the entry; the rest resolves its parent the same
// way Get does. Removing a list element shifts later elements down.
func (a *Accessor) Remove(source *Node, address string) bool {
	parts := strings.Split(address, a.delimiter)
	key := parts[len(parts)-1]
	parent := a.Get(source, strings.Join(parts[:len(parts)-1], a.delimiter), nil)
	if parent == nil {
		return false
	}
	switch parent.kind {
	case KindMap:
		return parent.DeleteField(key)
	case KindList:
		i, ok := internal.ParseAndValidateIndex(key, len(parent.items))
		if !ok {
			return false
		}
		return parent.DeleteIndex(i)
	}
	return false
}

// Get resolves address against source using the default delimiter.
func Get(source *Node, address string, def *Node) *Node {
	return defaultAccessor.Get(source, address, def)
}

// Set writes value at address using the default delimiter.
func Set(source *Node, address string, value *Node) error {
	return defaultAccessor.Set(source, address, value)
}

// Remove deletes the entry at address using the default delimiter.
func Remove(source *Node, address string) bool {
	return defaultAccessor.Remove(source, address)
}

// Exists reports whether address resolves using the default delimiter.
func Exists(source *Node, address string) bool {
	return defaultAccessor.Exists(source, address)
}
