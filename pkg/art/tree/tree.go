// Package tree implements the traversal, insertion, deletion, and
// enumeration algorithms of the radix tree over nodes stored in an arena.
package tree

import (
	"github.com/asciiradix/art/internal/debug"
	"github.com/asciiradix/art/pkg/arena"
	"github.com/asciiradix/art/pkg/art/node"
)

// index is shorthand for the arena handle type used throughout this
// package.
type index = arena.Index

// Tree is the arena-backed radix tree. The zero value is not usable; build
// one with [New].
type Tree struct {
	nodes    *arena.Arena[node.Node]
	overflow *arena.Arena[node.OverflowTable]
	root     arena.Index
	size     int
}

// New returns an empty Tree whose node and overflow arenas are pre-sized
// per the given hints.
func New(nodeCapacityHint, overflowCapacityHint int) *Tree {
	nodes := arena.New[node.Node](nodeCapacityHint)
	overflow := arena.New[node.OverflowTable](overflowCapacityHint)
	root := nodes.Insert(node.New(nil))

	return &Tree{nodes: nodes, overflow: overflow, root: root}
}

// Len returns the number of keys currently stored.
func (t *Tree) Len() int { return t.size }

// NodeCount returns the number of live nodes in the node arena, a rough
// proxy for the tree's in-memory footprint.
func (t *Tree) NodeCount() int { return t.nodes.Len() }

func (t *Tree) nodeAt(idx arena.Index) *node.Node {
	n, ok := t.nodes.Get(idx)
	debug.Assert(ok, "tree traversal followed stale index %d", idx)
	return n
}

// freeNode releases idx back to the node arena, first reclaiming any
// overflow table the node holds so deletion never leaks an overflow-arena
// slot. Must not be used on a node whose children were just handed off to
// another node via Adopt, since TakeContents already leaves it empty.
func (t *Tree) freeNode(idx index) {
	n := t.nodeAt(idx)
	n.Reset(t.overflow)
	t.nodes.Remove(idx)
}

// assertASCII is the contract check every public entrypoint applies to
// caller-supplied keys: this store is specialized for 7-bit ASCII byte
// strings and keys outside that range are a caller bug, not a runtime
// error (see spec Non-goals).
func assertASCII(key []byte) {
	for _, b := range key {
		debug.Assert(b < 128, "key byte %d is not 7-bit ASCII", b)
	}
}
