package jpath

import (
	"strconv"
	"strings"
)

// Keypath is an ordered sequence of keys locating a value inside nested
// documents and arrays. Each element is a string (document key) or an int
// (array index). A key's meaning is decided by the container it is applied
// to, not by its own type: an int applied at a document layer addresses the
// entry whose key is its decimal form, and is never an array operation.
type Keypath []any

// DefaultSeparator is the separator ParsePath and the Node string-path
// accessors use when none is given.
const DefaultSeparator = "."

// ParsePath splits path on sep into a Keypath. A segment that parses fully
// as an integer becomes an int key; every other segment stays a string.
// This is a documented best-effort heuristic: a document key that is
// literally a numeral string (e.g. "3") cannot be expressed in this form.
// Callers that need one must use a Keypath directly.
func ParsePath(path string, sep string) Keypath {
	segments := strings.Split(path, sep)
	kp := make(Keypath, len(segments))
	for i, s := range segments {
		if n, err := strconv.Atoi(s); err == nil {
			kp[i] = n
		} else {
			kp[i] = s
		}
	}
	return kp
}

// documentKey coerces a path key to a document key. Ints use their decimal
// form so that an integer key at a document layer stays a document key.
func documentKey(key any, pos int) (string, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case int:
		return strconv.Itoa(k), nil
	default:
		return "", &KeyTypeError{Key: key, Pos: pos}
	}
}

// arrayIndex coerces a path key to an array index. Only ints can index an
// array.
func arrayIndex(key any, pos int) (int, error) {
	if i, ok := key.(int); ok {
		return i, nil
	}
	return 0, &KeyTypeError{Key: key, Pos: pos}
}
