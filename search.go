package jpath

// Match pairs the keypath of one key occurrence with the value stored there.
type Match struct {
	Path  Keypath
	Value any
}

// FindAll returns the keypath of every location where key occurs as a direct
// document key anywhere under root, including inside array elements at any
// depth. Matches come back in depth-first pre-order: a document reporting a
// direct occurrence of key does so before any occurrence nested deeper
// inside it. Each returned path is an independent slice; mutating one never
// affects another.
func FindAll(root any, key string) []Keypath {
	matches := findAll(root, key)
	if matches == nil {
		return nil
	}
	paths := make([]Keypath, len(matches))
	for i, m := range matches {
		paths[i] = m.Path
	}
	return paths
}

// FindAllWithValues is FindAll paired with the value found at each match,
// saving a traversal when values are needed anyway.
func FindAllWithValues(root any, key string) []Match {
	return findAll(root, key)
}

// findAll runs an explicit-stack depth-first walk. Children are pushed in
// reverse so pop order equals recursion order. Prefixes are never mutated
// after creation; extend allocates a fresh slice per frame, so emitted paths
// share no backing array.
func findAll(root any, key string) []Match {
	type frame struct {
		node   any
		prefix Keypath
	}
	var out []Match
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n := f.node.(type) {
		case *Document:
			if v, ok := n.Get(key); ok {
				out = append(out, Match{Path: extend(f.prefix, key), Value: v})
			}
			for i := n.Len() - 1; i >= 0; i-- {
				e := (*n)[i]
				stack = append(stack, frame{node: e.Value, prefix: extend(f.prefix, e.Key)})
			}
		case *Array:
			for i := n.Len() - 1; i >= 0; i-- {
				stack = append(stack, frame{node: (*n)[i], prefix: extend(f.prefix, i)})
			}
		}
		// scalars are dead ends
	}
	return out
}

// extend copies prefix and appends key.
func extend(prefix Keypath, key any) Keypath {
	p := make(Keypath, len(prefix)+1)
	copy(p, prefix)
	p[len(prefix)] = key
	return p
}
