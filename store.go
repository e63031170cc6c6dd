// Package art is an in-memory, ordered-by-no-particular-order key/value
// store backed by a path-compressed adaptive radix tree specialized for
// 7-bit ASCII byte-string keys.
//
// A Store supports point operations (Get, Set, Del) and prefix operations
// (GetN, DelN) in time proportional to key length, independent of the
// number of keys stored. It is not safe for concurrent use without
// external synchronization, does not persist to disk, and does not
// guarantee any particular key ordering; see the package's design notes
// for the full rationale.
package art

import (
	"iter"

	"github.com/asciiradix/art/pkg/art/tree"
)

// defaultNodeCapacity and defaultOverflowCapacity size a Store's backing
// arenas up front when the caller gives no hint, trading a larger initial
// allocation for fewer amortized grows on typical workloads.
const (
	defaultNodeCapacity     = 1024
	defaultOverflowCapacity = 32
)

// Store is an in-memory key/value store. The zero value is not usable;
// construct one with New.
type Store struct {
	tree *tree.Tree
}

// Option configures a Store at construction time.
type Option func(*config)

type config struct {
	nodeCapacity     int
	overflowCapacity int
}

// WithNodeCapacity pre-sizes the store's node arena to hold n nodes
// without growing, when the approximate final size is known up front.
func WithNodeCapacity(n int) Option {
	return func(c *config) { c.nodeCapacity = n }
}

// WithOverflowCapacity pre-sizes the store's overflow-table arena to hold
// n tables without growing.
func WithOverflowCapacity(n int) Option {
	return func(c *config) { c.overflowCapacity = n }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	c := config{
		nodeCapacity:     defaultNodeCapacity,
		overflowCapacity: defaultOverflowCapacity,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &Store{tree: tree.New(c.nodeCapacity, c.overflowCapacity)}
}

// Get returns the value stored under key, if any. The returned slice must
// not be mutated; copy it if you need to keep a modifiable version.
func (s *Store) Get(key []byte) ([]byte, bool) { return s.tree.Get(key) }

// Has reports whether key is present.
func (s *Store) Has(key []byte) bool { return s.tree.Has(key) }

// Set stores value under key, replacing any existing value.
func (s *Store) Set(key, value []byte) { s.tree.Set(key, value) }

// Del removes key and reports whether it was present.
func (s *Store) Del(key []byte) bool { return s.tree.Del(key) }

// GetN returns every key carrying prefix along with its value. Order is
// unspecified. An empty prefix returns every key in the store.
func (s *Store) GetN(prefix []byte) []KV {
	raw := s.tree.GetN(prefix)
	out := make([]KV, len(raw))
	for i, kv := range raw {
		out[i] = KV{Key: kv.Key, Value: kv.Value}
	}
	return out
}

// DelN removes every key carrying prefix and returns how many were
// removed. An empty prefix deletes the entire store.
func (s *Store) DelN(prefix []byte) int { return s.tree.DelN(prefix) }

// KV is a single key/value pair.
type KV = tree.KV

// Visit calls fn for every key in the store, stopping early if fn returns
// false.
func (s *Store) Visit(fn func(key, value []byte) bool) { s.tree.Visit(fn) }

// VisitPrefix calls fn for every key carrying prefix, stopping early if fn
// returns false.
func (s *Store) VisitPrefix(prefix []byte, fn func(key, value []byte) bool) {
	s.tree.VisitPrefix(prefix, fn)
}

// All returns an iterator over every key/value pair in the store.
func (s *Store) All() iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		s.tree.Visit(yield)
	}
}

// AllPrefix returns an iterator over every key/value pair whose key
// carries prefix.
func (s *Store) AllPrefix(prefix []byte) iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		s.tree.VisitPrefix(prefix, yield)
	}
}

// Len returns the number of keys currently stored.
func (s *Store) Len() int { return s.tree.Len() }

// IsEmpty reports whether the store holds no keys.
func (s *Store) IsEmpty() bool { return s.tree.Len() == 0 }

// NodeCount returns the number of live tree nodes backing the store, a
// rough proxy for its in-memory footprint beyond the stored key/value
// bytes themselves.
func (s *Store) NodeCount() int { return s.tree.NodeCount() }
