package node

import (
	"github.com/asciiradix/art/internal/debug"
	"github.com/asciiradix/art/pkg/arena"
)

// SmallCap is the number of children a node stores inline, without
// touching the overflow arena. Ten covers the overwhelming majority of
// branch points in practice (digits, a handful of letters) at the cost
// of ten (radix, index) pairs per node.
const SmallCap = 10

// OverflowCap is the number of children an overflow table can hold.
// SmallCap+OverflowCap == 127 so that, together, a node's primary and
// overflow regions can address every 7-bit ASCII radix a key byte may
// carry.
const OverflowCap = 127 - SmallCap

// child is one (radix byte, child node index) pair.
type child struct {
	radix byte
	idx   arena.Index
}

// OverflowTable is the heap-allocated continuation of a node's child set,
// used only once a node's small region fills up. Overflow tables live in
// their own [arena.Arena] so a node itself stays a fixed, cheap-to-copy
// size regardless of how wide it eventually branches.
type OverflowTable struct {
	entries [OverflowCap]child
	n       uint8
}

func (o *OverflowTable) find(radix byte) (arena.Index, bool) {
	for i := 0; i < int(o.n); i++ {
		if o.entries[i].radix == radix {
			return o.entries[i].idx, true
		}
	}
	return 0, false
}

func (o *OverflowTable) full() bool { return int(o.n) == OverflowCap }

func (o *OverflowTable) push(radix byte, idx arena.Index) {
	debug.Assert(!o.full(), "overflow table pushed past capacity %d", OverflowCap)
	o.entries[o.n] = child{radix: radix, idx: idx}
	o.n++
}

// remove deletes the entry for radix via swap-remove. The table itself
// stays allocated even once it empties; see childTable.Remove.
func (o *OverflowTable) remove(radix byte) (arena.Index, bool) {
	for i := 0; i < int(o.n); i++ {
		if o.entries[i].radix == radix {
			idx := o.entries[i].idx
			last := int(o.n) - 1
			o.entries[i] = o.entries[last]
			o.entries[last] = child{}
			o.n--
			return idx, true
		}
	}
	return 0, false
}

// childTable is a node's full child set: a small inline primary region
// plus, once that fills, a linked [OverflowTable] allocated out of a
// separate arena.
//
// childTable never allocates on its own; every operation that needs the
// overflow region takes the owning tree's overflow arena as a parameter.
type childTable struct {
	entries     [SmallCap]child
	n           uint8
	hasOverflow bool
	overflow    arena.Index
}

// Len reports the total number of children across both regions.
func (ct *childTable) Len(ov *arena.Arena[OverflowTable]) int {
	total := int(ct.n)
	if ct.hasOverflow {
		if t, ok := ov.Get(ct.overflow); ok {
			total += int(t.n)
		}
	}
	return total
}

// Find returns the child index stored under radix, if any.
func (ct *childTable) Find(ov *arena.Arena[OverflowTable], radix byte) (arena.Index, bool) {
	for i := 0; i < int(ct.n); i++ {
		if ct.entries[i].radix == radix {
			return ct.entries[i].idx, true
		}
	}
	if !ct.hasOverflow {
		return 0, false
	}
	t, ok := ov.Get(ct.overflow)
	if !ok {
		return 0, false
	}
	return t.find(radix)
}

// Full reports whether the table can accept no further distinct radixes.
func (ct *childTable) Full(ov *arena.Arena[OverflowTable]) bool {
	if int(ct.n) < SmallCap {
		return false
	}
	if !ct.hasOverflow {
		return false
	}
	t, ok := ov.Get(ct.overflow)
	return ok && t.full()
}

// Push inserts a new (radix, idx) pair, spilling into the overflow arena
// when the small region is full. Pushing a radix that already exists is a
// caller error (the tree layer always removes-then-inserts on replace).
func (ct *childTable) Push(ov *arena.Arena[OverflowTable], radix byte, idx arena.Index) {
	debug.Assert(!ct.Full(ov), "child table pushed past capacity for radix %d", radix)

	if int(ct.n) < SmallCap {
		ct.entries[ct.n] = child{radix: radix, idx: idx}
		ct.n++
		return
	}

	if !ct.hasOverflow {
		ct.overflow = ov.Insert(OverflowTable{})
		ct.hasOverflow = true
	}

	t, ok := ov.Get(ct.overflow)
	debug.Assert(ok, "child table's overflow index %d is stale", ct.overflow)
	t.push(radix, idx)
}

// Remove deletes the entry for radix via swap-remove.
//
// The overflow table, once allocated, stays allocated even if removal
// empties it: an overflow table is freed only when its owning node is
// destroyed (see Node.Reset), not on every incidental empty. This avoids
// churning the overflow arena on add/remove cycles at a node that
// regularly hovers around SmallCap children.
func (ct *childTable) Remove(ov *arena.Arena[OverflowTable], radix byte) (arena.Index, bool) {
	for i := 0; i < int(ct.n); i++ {
		if ct.entries[i].radix == radix {
			idx := ct.entries[i].idx
			last := int(ct.n) - 1
			ct.entries[i] = ct.entries[last]
			ct.entries[last] = child{}
			ct.n--
			return idx, true
		}
	}

	if !ct.hasOverflow {
		return 0, false
	}
	t, ok := ov.Get(ct.overflow)
	if !ok {
		return 0, false
	}
	return t.remove(radix)
}

// Single returns the lone child in the table and true, when the primary
// region holds exactly one entry and no overflow table is attached. A
// primary region that has emptied to zero while an attached overflow
// table still holds entries does NOT count, even if that overflow table
// happens to hold exactly one entry: folding it into the parent would
// require freeing the overflow table, which only Node.Reset does, and
// recompression otherwise has no way to notice the attached table and
// would leak its arena slot.
func (ct *childTable) Single(ov *arena.Arena[OverflowTable]) (radix byte, idx arena.Index, ok bool) {
	if ct.n != 1 || ct.hasOverflow {
		return 0, 0, false
	}
	return ct.entries[0].radix, ct.entries[0].idx, true
}

// ForEach visits every (radix, idx) pair. Iteration order is unspecified,
// matching the store's documented lack of key ordering guarantees.
func (ct *childTable) ForEach(ov *arena.Arena[OverflowTable], fn func(radix byte, idx arena.Index)) {
	for i := 0; i < int(ct.n); i++ {
		fn(ct.entries[i].radix, ct.entries[i].idx)
	}
	if !ct.hasOverflow {
		return
	}
	t, ok := ov.Get(ct.overflow)
	if !ok {
		return
	}
	for i := 0; i < int(t.n); i++ {
		fn(t.entries[i].radix, t.entries[i].idx)
	}
}
