// Package jpath provides keypath navigation and key search over
// heterogeneous nested structures of documents and arrays, the shapes JSON
// decodes into. A keypath is an ordered list of keys (string document keys
// and int array indices) that locates a value inside such a structure;
// jpath resolves keypaths for reads, constructs missing document layers for
// writes, and enumerates every path to a given key.
package jpath

// Document is an ordered collection of key-value pairs, the shape a JSON
// object decodes into when key order matters. Keys are unique; insertion
// order is preserved on enumeration. Trees hold documents as *Document so
// that a document reached by navigation is a view: writes and appends
// through the view are visible from the root.
type Document []Entry

// Array is an ordered sequence of values of any type. Trees hold arrays as
// *Array for the same view semantics as Document.
type Array []any

// Entry is a single entry in a Document: a string key and an associated
// value of any type.
type Entry struct {
	Key   string
	Value any
}

// Index returns the position of key in the document, or -1 if absent.
func (d *Document) Index(key string) int {
	for i, e := range *d {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key and whether the key was present.
func (d *Document) Get(key string) (any, bool) {
	if i := d.Index(key); i >= 0 {
		return (*d)[i].Value, true
	}
	return nil, false
}

// Set replaces the value stored under key, or appends a new entry when the
// key is absent. The insertion position of an existing key is kept.
func (d *Document) Set(key string, value any) {
	if i := d.Index(key); i >= 0 {
		(*d)[i].Value = value
		return
	}
	*d = append(*d, Entry{Key: key, Value: value})
}

// Delete removes the entry for key, reporting whether it was present.
func (d *Document) Delete(key string) bool {
	i := d.Index(key)
	if i < 0 {
		return false
	}
	*d = append((*d)[:i], (*d)[i+1:]...)
	return true
}

// Keys returns the document keys in insertion order.
func (d *Document) Keys() []string {
	keys := make([]string, len(*d))
	for i, e := range *d {
		keys[i] = e.Key
	}
	return keys
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(*d)
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(*a)
}

// At returns the element at index i and whether i was in range.
func (a *Array) At(i int) (any, bool) {
	if i < 0 || i >= len(*a) {
		return nil, false
	}
	return (*a)[i], true
}

// Append adds v at the end of the array.
func (a *Array) Append(v any) {
	*a = append(*a, v)
}
