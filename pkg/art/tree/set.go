package tree

import "github.com/asciiradix/art/pkg/art/node"

// Set stores value under key, replacing any existing value. Runs in O(k)
// amortized time, allocating at most two new nodes per call (a split
// allocates the displaced node and the new leaf).
func (t *Tree) Set(key, value []byte) {
	assertASCII(key)
	t.setAt(t.root, key, value)
}

// setAt descends from idx, splitting or extending nodes as needed.
//
// Every call to t.nodes.Insert can grow the node arena's backing slice and
// invalidate pointers obtained from an earlier t.nodeAt, so this function
// never holds a *node.Node across an Insert call: it re-fetches from idx
// immediately afterward whenever it still needs to mutate that node.
func (t *Tree) setAt(idx index, keyTail, value []byte) {
	n := t.nodeAt(idx)
	m := compare(n.Compression(), keyTail)

	switch m.kind {
	case matchFinal:
		if !n.HasValue() {
			t.size++
		}
		n.SetValue(value)

	case matchPath:
		rest := keyTail[m.commonLen:]
		radix := rest[0]

		if child, ok := n.FindChild(t.overflow, radix); ok {
			t.setAt(child, rest[1:], value)
			return
		}

		leaf := node.New(rest[1:])
		leaf.SetValue(value)
		leafIdx := t.nodes.Insert(leaf)

		n = t.nodeAt(idx)
		n.PushChild(t.overflow, radix, leafIdx)
		t.size++

	default: // matchPartial: split n at commonLen
		common := m.commonLen

		oldTail := n.SplitCompression(common)
		oldRadix := oldTail[0]
		oldCompression := oldTail[1:]

		v, children := n.TakeContents()
		n.TrimCompression(common)

		old := node.New(oldCompression)
		old.Adopt(v, children)
		oldIdx := t.nodes.Insert(old)

		rest := keyTail[common:]
		if len(rest) == 0 {
			n = t.nodeAt(idx)
			n.SetValue(value)
			n.PushChild(t.overflow, oldRadix, oldIdx)
			t.size++
			return
		}

		newRadix := rest[0]
		leaf := node.New(rest[1:])
		leaf.SetValue(value)
		leafIdx := t.nodes.Insert(leaf)

		n = t.nodeAt(idx)
		n.PushChild(t.overflow, oldRadix, oldIdx)
		n.PushChild(t.overflow, newRadix, leafIdx)
		t.size++
	}
}
