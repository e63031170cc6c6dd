package node

// inlineCap is the number of compression bytes a node stores without a heap
// allocation. Chosen to keep a node's compressed path fragment inside a
// single small allocation for the common case (the vast majority of radix
// splits in an ASCII key space produce short runs); longer fragments simply
// fall back to a heap-backed slice.
const inlineCap = 23

// segment is a node's compressed path fragment: an ordered byte sequence
// that is empty for the root, short for most interior nodes, and
// occasionally long enough to need heap backing.
//
// segment is a value type; copying it copies the inline array (cheap) and
// shares the heap slice (also cheap, and safe since segments are always
// replaced wholesale, never mutated in place through an alias).
type segment struct {
	inline [inlineCap]byte
	n      uint8
	heap   []byte
}

// newSegment builds a segment holding a copy of b.
func newSegment(b []byte) segment {
	var s segment
	if len(b) <= inlineCap {
		copy(s.inline[:], b)
		s.n = uint8(len(b))
		return s
	}
	s.heap = append([]byte(nil), b...)
	return s
}

// Len returns the number of bytes in the segment.
func (s segment) Len() int {
	if s.heap != nil {
		return len(s.heap)
	}
	return int(s.n)
}

// Empty reports whether the segment holds zero bytes.
func (s segment) Empty() bool { return s.Len() == 0 }

// Bytes returns the segment's contents. The returned slice must not be
// retained past the next mutation of the owning node's compression.
func (s *segment) Bytes() []byte {
	if s.heap != nil {
		return s.heap
	}
	return s.inline[:s.n]
}

// At returns the byte at index i.
func (s *segment) At(i int) byte { return s.Bytes()[i] }

// slice returns a freshly-copied segment over [lo:hi) of s.
func (s *segment) slice(lo, hi int) segment {
	return newSegment(s.Bytes()[lo:hi])
}

// withPrefix returns a new segment equal to append([]byte{b}, rest...).
//
// Used by recompression (§4.5) to absorb an only child's radix and
// compression into its parent.
func withPrefix(b byte, rest *segment) segment {
	buf := make([]byte, 0, 1+rest.Len())
	buf = append(buf, b)
	buf = append(buf, rest.Bytes()...)
	return newSegment(buf)
}
