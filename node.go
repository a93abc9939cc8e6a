package jpath

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-json-experiment/json"
)

var errEmptyKeypath = errors.New("jpath: empty keypath")

// Node wraps a root container for keypath navigation. It is a view: the
// wrapped data is never copied, and values read out of a Node alias the
// structure the Node wraps, so writes through a sub-view are visible from
// the root. Nodes are not safe for concurrent use; callers that share a root
// across goroutines must synchronize externally.
type Node struct {
	data any // *Document or *Array
}

// New wraps data, which must be a *Document, an *Array, or nil. nil means
// "start empty": the Node wraps a fresh empty document. Any other type fails
// with InvalidRootTypeError.
func New(data any) (*Node, error) {
	switch data.(type) {
	case nil:
		return &Node{data: &Document{}}, nil
	case *Document, *Array:
		return &Node{data: data}, nil
	default:
		return nil, &InvalidRootTypeError{Value: data}
	}
}

// MustNew is New, panicking on error.
func MustNew(data any) *Node {
	n, err := New(data)
	if err != nil {
		panic(err)
	}
	return n
}

// FromJSON decodes data into a new Node using the package unmarshalers with
// directive handling disabled. Pass json.WithUnmarshalers(Unmarshalers(r))
// in opts to enable directives or otherwise override decoding.
func FromJSON(data []byte, opts ...json.Options) (*Node, error) {
	opts = append([]json.Options{json.WithUnmarshalers(Unmarshalers(nil))}, opts...)
	var v any
	if err := json.Unmarshal(data, &v, opts...); err != nil {
		return nil, err
	}
	return New(v)
}

// Value returns the underlying root container (a *Document or *Array).
func (n *Node) Value() any {
	return n.data
}

// Get resolves path against the root and returns the value there. A single
// key is one direct lookup; a longer path runs full traversal. Containers
// come back as views aliasing the root; wrap them with New to keep
// navigating.
func (n *Node) Get(path ...any) (any, error) {
	return Traverse(n.data, Keypath(path))
}

// Set assigns value at path without creating structure: every layer but the
// last must already exist. Use Insert to create missing document layers.
func (n *Node) Set(path Keypath, value any) error {
	if len(path) == 0 {
		return errEmptyKeypath
	}
	parent, err := Traverse(n.data, path[:len(path)-1])
	if err != nil {
		return err
	}
	return setValue(parent, path[len(path)-1], value, len(path)-1)
}

// Insert assigns value at path, creating missing document layers along the
// way and growing arrays addressed at exactly their length. Layers created
// before a failure deeper in the path are kept.
func (n *Node) Insert(path Keypath, value any) error {
	if len(path) == 0 {
		return errEmptyKeypath
	}
	parent, err := EnsurePath(n.data, path[:len(path)-1])
	if err != nil {
		return err
	}
	return setValue(parent, path[len(path)-1], value, len(path)-1)
}

// GetPath resolves a separator-delimited string path. The default separator
// is "."; pass an alternative as sep. Integer-looking segments address
// arrays by index (see ParsePath for the heuristic's limits).
func (n *Node) GetPath(path string, sep ...string) (any, error) {
	return n.Get(parseSep(path, sep)...)
}

// SetPath assigns via a separator-delimited string path. Like Set, every
// layer but the last must already exist.
func (n *Node) SetPath(path string, value any, sep ...string) error {
	return n.Set(parseSep(path, sep), value)
}

func parseSep(path string, sep []string) Keypath {
	s := DefaultSeparator
	if len(sep) > 0 {
		s = sep[0]
	}
	return ParsePath(path, s)
}

// FindAll returns the keypath of every occurrence of key under the root.
func (n *Node) FindAll(key string) []Keypath {
	return FindAll(n.data, key)
}

// FindAllWithValues returns every occurrence of key under the root paired
// with its value.
func (n *Node) FindAllWithValues(key string) []Match {
	return FindAllWithValues(n.data, key)
}

// Len returns the number of entries or elements in the root container.
func (n *Node) Len() int {
	switch d := n.data.(type) {
	case *Document:
		return d.Len()
	case *Array:
		return d.Len()
	}
	return 0
}

// Keys enumerates the root container: document keys in insertion order, or
// the valid indices of an array root.
func (n *Node) Keys() []any {
	switch d := n.data.(type) {
	case *Document:
		keys := make([]any, d.Len())
		for i, e := range *d {
			keys[i] = e.Key
		}
		return keys
	case *Array:
		keys := make([]any, d.Len())
		for i := range *d {
			keys[i] = i
		}
		return keys
	}
	return nil
}

// IsEmpty reports whether the root container has no entries.
func (n *Node) IsEmpty() bool {
	return n.Len() == 0
}

// Equal compares the underlying structure against other, which may be a raw
// container or another Node.
func (n *Node) Equal(other any) bool {
	if o, ok := other.(*Node); ok {
		other = o.data
	}
	return reflect.DeepEqual(n.data, other)
}

// Copy returns a Node over a shallow copy of the root container: top-level
// entries are copied, nested containers stay shared with the original.
func (n *Node) Copy() *Node {
	switch d := n.data.(type) {
	case *Document:
		cp := make(Document, len(*d))
		copy(cp, *d)
		return &Node{data: &cp}
	case *Array:
		cp := make(Array, len(*d))
		copy(cp, *d)
		return &Node{data: &cp}
	}
	return &Node{data: n.data}
}

// Clear removes all entries from the root container in place. Views over
// the same container observe the removal.
func (n *Node) Clear() {
	switch d := n.data.(type) {
	case *Document:
		*d = (*d)[:0]
	case *Array:
		*d = (*d)[:0]
	}
}

// Dump serializes the underlying structure as JSON, preserving document key
// order. opts are passed through to json.Marshal; serializer failures
// (values JSON cannot represent) are returned unchanged.
func (n *Node) Dump(opts ...json.Options) ([]byte, error) {
	return json.Marshal(n.data, opts...)
}

// String implements fmt.Stringer using the JSON form.
func (n *Node) String() string {
	b, err := n.Dump()
	if err != nil {
		return fmt.Sprintf("jpath.Node(%v)", n.data)
	}
	return "jpath.Node(" + string(b) + ")"
}
