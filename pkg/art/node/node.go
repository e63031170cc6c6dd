// Package node defines the storage representation of a single radix tree
// node: its compressed path segment, optional value, and two-tier child
// table.
package node

import (
	"github.com/asciiradix/art/pkg/arena"
	"github.com/asciiradix/art/pkg/opt"
)

// Node is one vertex of the tree. Every Node except the root either carries
// a value or has at least two children, with one exception: a node with an
// overflow table attached may be left holding a single child, since
// recompression only absorbs a lone child from the primary region. See the
// tree package for how that shape is maintained.
type Node struct {
	compression segment
	value       opt.Option[[]byte]
	children    childTable
}

// Index addresses a Node inside its owning [arena.Arena].
type Index = arena.Index

// New returns a childless, valueless node whose compression is a copy of
// prefix.
func New(prefix []byte) Node {
	return Node{compression: newSegment(prefix)}
}

// Compression returns the node's compressed path fragment.
func (n *Node) Compression() []byte { return n.compression.Bytes() }

// CompressionLen returns the length of the compressed path fragment
// without materializing it.
func (n *Node) CompressionLen() int { return n.compression.Len() }

// SetCompression replaces the node's compressed path fragment.
func (n *Node) SetCompression(b []byte) { n.compression = newSegment(b) }

// TrimCompression truncates the compression to its first upTo bytes.
func (n *Node) TrimCompression(upTo int) {
	n.compression = n.compression.slice(0, upTo)
}

// SplitCompression returns the compression bytes from offset onward, as a
// standalone copy, and leaves the receiver's compression untouched. Callers
// that also want the receiver truncated should follow with TrimCompression.
func (n *Node) SplitCompression(offset int) []byte {
	b := n.compression.Bytes()
	return append([]byte(nil), b[offset:]...)
}

// AbsorbChild appends radix followed by child's compression to the node's
// own compression, used by recompression to fold an only child back into
// its parent.
func (n *Node) AbsorbChild(radix byte, child *Node) {
	tail := withPrefix(radix, &child.compression)
	buf := make([]byte, 0, n.compression.Len()+tail.Len())
	buf = append(buf, n.compression.Bytes()...)
	buf = append(buf, tail.Bytes()...)
	n.compression = newSegment(buf)
}

// Value returns the node's stored value, if any.
func (n *Node) Value() ([]byte, bool) {
	if n.value.IsNone() {
		return nil, false
	}
	return n.value.Unwrap(), true
}

// SetValue stores value on the node, replacing any prior value.
func (n *Node) SetValue(value []byte) { n.value = opt.Some(value) }

// ClearValue removes the node's value, if any, and reports whether one was
// present.
func (n *Node) ClearValue() bool {
	had := n.value.IsSome()
	n.value = opt.None[[]byte]()
	return had
}

// HasValue reports whether the node carries a value.
func (n *Node) HasValue() bool { return n.value.IsSome() }

// ChildCount returns the number of children across both table regions.
func (n *Node) ChildCount(ov *arena.Arena[OverflowTable]) int {
	return n.children.Len(ov)
}

// FindChild looks up the child stored under radix.
func (n *Node) FindChild(ov *arena.Arena[OverflowTable], radix byte) (Index, bool) {
	return n.children.Find(ov, radix)
}

// PushChild inserts a new child under radix.
func (n *Node) PushChild(ov *arena.Arena[OverflowTable], radix byte, idx Index) {
	n.children.Push(ov, radix, idx)
}

// RemoveChild deletes the child stored under radix, if any.
func (n *Node) RemoveChild(ov *arena.Arena[OverflowTable], radix byte) (Index, bool) {
	return n.children.Remove(ov, radix)
}

// SingleChild returns the node's lone child, when it has exactly one.
func (n *Node) SingleChild(ov *arena.Arena[OverflowTable]) (radix byte, idx Index, ok bool) {
	return n.children.Single(ov)
}

// ChildrenFull reports whether the node cannot accept another distinct
// child radix: its primary region and its overflow table are both full.
func (n *Node) ChildrenFull(ov *arena.Arena[OverflowTable]) bool {
	return n.children.Full(ov)
}

// EachChild visits every (radix, child index) pair stored on the node.
func (n *Node) EachChild(ov *arena.Arena[OverflowTable], fn func(radix byte, idx Index)) {
	n.children.ForEach(ov, fn)
}

// TakeContents extracts the node's value and child table, leaving the
// receiver valueless and childless. Used when splitting a node's
// compression: the receiver keeps the shorter prefix and becomes a new
// branch point, while a freshly allocated sibling inherits what it used
// to hold.
func (n *Node) TakeContents() (opt.Option[[]byte], childTable) {
	v := n.value
	c := n.children
	n.value = opt.None[[]byte]()
	n.children = childTable{}
	return v, c
}

// Adopt installs a previously-taken value and child table onto the
// receiver, which is expected to be fresh.
func (n *Node) Adopt(value opt.Option[[]byte], children childTable) {
	n.value = value
	n.children = children
}

// Reset clears the node back to a valueless, childless state, freeing any
// overflow table it had allocated. Callers must use this instead of
// discarding a node directly whenever its children are being destroyed
// rather than adopted elsewhere, or the overflow arena would retain a
// stranded, unreachable entry.
func (n *Node) Reset(ov *arena.Arena[OverflowTable]) {
	if n.children.hasOverflow {
		ov.Remove(n.children.overflow)
	}
	n.value = opt.None[[]byte]()
	n.children = childTable{}
}

// Canonical reports whether the node either carries a value or branches at
// least twice. The root is exempt since an empty store's root is both
// valueless and childless. A non-root node left with a single child and an
// attached overflow table is reported as not canonical.
func (n *Node) Canonical(ov *arena.Arena[OverflowTable], isRoot bool) bool {
	if isRoot {
		return true
	}
	return n.HasValue() || n.ChildCount(ov) >= 2
}
