// Package arena provides an index-stable slot arena for storing values of a
// single type behind small integer handles instead of pointers.
//
// Unlike the byte-oriented, pointer-packing arena this package's sibling in
// the teacher lineage once provided, this Arena never hands out a raw
// pointer. Every insertion returns a 32-bit [Index] that stays valid for the
// lifetime of the stored value and can be freely copied, stored inside
// other arena-backed structures, and compared. Removing a value leaves a
// hole that a later Insert may reuse, so indices are not monotonically
// increasing and must never be assumed dense.
//
// This trade means values stored in an Arena must not contain pointers back
// into the arena itself (those should be [Index] values instead), which in
// turn means the arena's contents are ordinary garbage-collected Go memory:
// there is no Reset-and-invalidate step, and nothing becomes unsafe to
// touch after another operation runs.
package arena

import (
	"math"

	"github.com/asciiradix/art/internal/debug"
)

// Index is a stable handle to a value stored in an Arena.
//
// Index values are 32-bit, matching the size budget a production radix
// tree cares about; exceeding 2^31 live entries in a single Arena is out of
// scope (see debug.Assert in Insert).
type Index uint32

// slot is one arena cell: either occupied by a live value, or free and
// linked into the arena's free list.
type slot[T any] struct {
	value      T
	occupied   bool
	generation uint32
}

// Arena is dense, hole-tolerant storage that returns stable [Index] handles.
//
// The zero Arena is empty and ready to use; use [New] to pre-size it when
// the expected population is known up front.
type Arena[T any] struct {
	slots []slot[T]
	free  []Index
	live  int
}

// New returns an Arena pre-sized to hold capacityHint values without
// growing its backing storage.
func New[T any](capacityHint int) *Arena[T] {
	a := &Arena[T]{}
	if capacityHint > 0 {
		a.slots = make([]slot[T], 0, capacityHint)
	}
	return a
}

// Insert stores value and returns a fresh Index for it, reusing a
// previously removed slot when one is available.
func (a *Arena[T]) Insert(value T) Index {
	a.live++

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = value
		s.occupied = true
		s.generation++
		return idx
	}

	debug.Assert(len(a.slots) < math.MaxUint32, "arena exhausted its 32-bit index space")

	a.slots = append(a.slots, slot[T]{value: value, occupied: true})
	return Index(len(a.slots) - 1)
}

// Get returns a pointer to the value at idx, or (nil, false) if idx is out
// of range or has been removed.
//
// The returned pointer is valid for in-place mutation until the next call
// to Remove with the same idx or the next Insert, whichever comes first: an
// Insert may grow the backing storage, after which writes through an older
// pointer no longer reach the arena.
func (a *Arena[T]) Get(idx Index) (*T, bool) {
	if int(idx) >= len(a.slots) || !a.slots[idx].occupied {
		return nil, false
	}
	return &a.slots[idx].value, true
}

// Remove deletes the value at idx and returns it. Subsequent Get calls for
// idx return absent until the slot is reused by a later Insert.
func (a *Arena[T]) Remove(idx Index) (T, bool) {
	var zero T

	if int(idx) >= len(a.slots) || !a.slots[idx].occupied {
		return zero, false
	}

	s := &a.slots[idx]
	value := s.value
	s.value = zero
	s.occupied = false
	a.free = append(a.free, idx)
	a.live--

	return value, true
}

// Len returns the number of currently live (inserted and not yet removed)
// values in the arena.
func (a *Arena[T]) Len() int { return a.live }

// Generation returns a per-slot counter that increments every time idx's
// slot is reused by Insert. It exists purely as a diagnostic aid for
// detecting use of a stale Index; callers must not depend on it for
// correctness.
func (a *Arena[T]) Generation(idx Index) uint32 {
	if int(idx) >= len(a.slots) {
		return 0
	}
	return a.slots[idx].generation
}
