package tree

// pathStep records one edge walked during a descent, so that deletion can
// retrace its steps to repair the tree's canonical shape without a second
// traversal.
type pathStep struct {
	idx   index
	radix byte
}

// Del removes the value stored under key and reports whether it was
// present. Deleting an absent key is a no-op that returns false.
func (t *Tree) Del(key []byte) bool {
	assertASCII(key)

	var path []pathStep
	idx := t.root
	rest := key

	for {
		n := t.nodeAt(idx)
		m := compare(n.Compression(), rest)

		switch m.kind {
		case matchFinal:
			if !n.HasValue() {
				return false
			}
			n.ClearValue()
			t.size--
			t.recompress(idx, path)
			return true

		case matchPath:
			rest = rest[m.commonLen:]
			radix := rest[0]
			child, ok := n.FindChild(t.overflow, radix)
			if !ok {
				return false
			}
			path = append(path, pathStep{idx: idx, radix: radix})
			idx = child
			rest = rest[1:]

		default: // matchPartial
			return false
		}
	}
}

// recompress restores the canonical-shape invariant (§4.5) starting at
// idx and walking back up path as needed. idx has just lost its value (or
// a child); path holds the edges from the root down to idx's parent.
//
// A node missing its value with exactly one remaining child in its
// primary region (no overflow attached) absorbs that child and stops,
// since the child was canonical before the merge and so the merged node
// is canonical too. A node with zero value and zero children is dead
// weight: it is unlinked from its parent and freed, and the walk
// continues one level up to see if the parent now needs the same
// treatment.
func (t *Tree) recompress(idx index, path []pathStep) {
	for {
		if idx == t.root {
			return
		}

		n := t.nodeAt(idx)
		if n.HasValue() {
			return
		}

		if n.ChildCount(t.overflow) == 0 {
			if len(path) == 0 {
				return
			}
			parent := path[len(path)-1]
			path = path[:len(path)-1]

			p := t.nodeAt(parent.idx)
			p.RemoveChild(t.overflow, parent.radix)
			t.freeNode(idx)

			idx = parent.idx
			continue
		}

		// SingleChild only reports a survivor when it lives in the
		// primary region with no overflow table attached: folding a
		// child out of an attached overflow table would require
		// freeing that table, which only Node.Reset does on node
		// destruction. A node whose one remaining child sits in
		// overflow is left as is rather than forcing that free.
		if radix, childIdx, ok := n.SingleChild(t.overflow); ok {
			child := t.nodeAt(childIdx)
			n.AbsorbChild(radix, child)
			v, children := child.TakeContents()
			t.nodes.Remove(childIdx)

			n = t.nodeAt(idx)
			n.Adopt(v, children)
		}
		return
	}
}
