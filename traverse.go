package jpath

// Traverse walks root along path in read mode and returns the value reached
// after consuming every key. root must be a *Document or an *Array. At each
// step the current container decides how the key is applied: document layers
// look the key up (KeyNotFoundError when absent), array layers index by it
// (IndexOutOfRangeError outside [0, length)), and a scalar met before the
// path is exhausted fails with PathBlockedError. Every failure carries the
// offending key's zero-based position in path. An empty path returns root.
func Traverse(root any, path Keypath) (any, error) {
	if len(path) == 1 {
		// single-key shortcut: one direct lookup, no loop
		return lookup(root, path[0], 0)
	}
	node := root
	for i, key := range path {
		child, err := lookup(node, key, i)
		if err != nil {
			return nil, err
		}
		node = child
	}
	return node, nil
}

// lookup resolves one key against one container layer.
func lookup(node, key any, pos int) (any, error) {
	switch n := node.(type) {
	case *Document:
		k, err := documentKey(key, pos)
		if err != nil {
			return nil, err
		}
		v, ok := n.Get(k)
		if !ok {
			return nil, &KeyNotFoundError{Key: k, Pos: pos}
		}
		return v, nil
	case *Array:
		i, err := arrayIndex(key, pos)
		if err != nil {
			return nil, err
		}
		v, ok := n.At(i)
		if !ok {
			return nil, &IndexOutOfRangeError{Index: i, Length: n.Len(), Pos: pos}
		}
		return v, nil
	default:
		return nil, &PathBlockedError{Key: key, Pos: pos}
	}
}

// EnsurePath walks root along path in construct mode and returns the node
// reached after consuming every key. A missing key at a document layer gets
// a fresh empty *Document; an index equal to an array's length appends one
// (any other out-of-range index fails with IndexOutOfRangeError). Array
// layers are never created, only grown. Intermediate layers created before a
// later failure are kept: there is no rollback.
func EnsurePath(root any, path Keypath) (any, error) {
	node := root
	for i, key := range path {
		switch n := node.(type) {
		case *Document:
			k, err := documentKey(key, i)
			if err != nil {
				return nil, err
			}
			v, ok := n.Get(k)
			if !ok {
				child := &Document{}
				n.Set(k, child)
				v = child
			}
			node = v
		case *Array:
			idx, err := arrayIndex(key, i)
			if err != nil {
				return nil, err
			}
			if idx == n.Len() {
				n.Append(&Document{})
			}
			v, ok := n.At(idx)
			if !ok {
				return nil, &IndexOutOfRangeError{Index: idx, Length: n.Len(), Pos: i}
			}
			node = v
		default:
			return nil, &PathBlockedError{Key: key, Pos: i}
		}
	}
	return node, nil
}

// setValue assigns value under key on parent. Document parents accept any
// key (ints become decimal-form document keys, never an array insertion);
// array parents accept an existing index, or exactly the current length,
// which appends.
func setValue(parent, key, value any, pos int) error {
	switch n := parent.(type) {
	case *Document:
		k, err := documentKey(key, pos)
		if err != nil {
			return err
		}
		n.Set(k, value)
		return nil
	case *Array:
		idx, err := arrayIndex(key, pos)
		if err != nil {
			return err
		}
		switch {
		case idx >= 0 && idx < n.Len():
			(*n)[idx] = value
		case idx == n.Len():
			n.Append(value)
		default:
			return &IndexOutOfRangeError{Index: idx, Length: n.Len(), Pos: pos}
		}
		return nil
	default:
		return &PathBlockedError{Key: key, Pos: pos}
	}
}
