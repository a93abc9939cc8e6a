package jpath

import "fmt"

// KeyNotFoundError reports a document lookup of an absent key during
// read-mode traversal. Pos is the key's zero-based position in the keypath.
type KeyNotFoundError struct {
	Key string
	Pos int
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("jpath: key %q not found (keypath position %d)", e.Key, e.Pos)
}

// IndexOutOfRangeError reports an array index outside the valid range:
// [0, length) for reads, [0, length] for construction-mode writes, where
// index == length appends.
type IndexOutOfRangeError struct {
	Index  int
	Length int
	Pos    int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("jpath: index %d out of range for array of length %d (keypath position %d)", e.Index, e.Length, e.Pos)
}

// PathBlockedError reports a traversal that still had keys to consume when
// it reached a scalar.
type PathBlockedError struct {
	Key any
	Pos int
}

func (e *PathBlockedError) Error() string {
	return fmt.Sprintf("jpath: cannot apply key %v (keypath position %d): value is neither document nor array", e.Key, e.Pos)
}

// KeyTypeError reports a key that cannot address the container it was
// applied to: a key that is neither string nor int, or a non-int key
// applied at an array layer.
type KeyTypeError struct {
	Key any
	Pos int
}

func (e *KeyTypeError) Error() string {
	return fmt.Sprintf("jpath: invalid key %v of type %T (keypath position %d)", e.Key, e.Key, e.Pos)
}

// InvalidRootTypeError reports an attempt to wrap a value that is not a
// *Document, an *Array, or nil.
type InvalidRootTypeError struct {
	Value any
}

func (e *InvalidRootTypeError) Error() string {
	return fmt.Sprintf("jpath: root must be *Document, *Array or nil (got %T)", e.Value)
}
