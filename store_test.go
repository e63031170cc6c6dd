package art

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStoreBasics(t *testing.T) {
	Convey("Given a fresh Store", t, func() {
		s := New()

		Convey("it starts empty", func() {
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("Set/Get/Del round-trip a key", func() {
			s.Set([]byte("hello"), []byte("world"))
			v, ok := s.Get([]byte("hello"))
			So(ok, ShouldBeTrue)
			So(string(v), ShouldEqual, "world")
			So(s.Has([]byte("hello")), ShouldBeTrue)

			So(s.Del([]byte("hello")), ShouldBeTrue)
			So(s.Has([]byte("hello")), ShouldBeFalse)
			So(s.IsEmpty(), ShouldBeTrue)
		})
	})

	Convey("Given a Store with pre-sized capacity hints", t, func() {
		s := New(WithNodeCapacity(256), WithOverflowCapacity(8))

		Convey("it behaves identically to a default Store", func() {
			s.Set([]byte("k"), []byte("v"))
			v, ok := s.Get([]byte("k"))
			So(ok, ShouldBeTrue)
			So(string(v), ShouldEqual, "v")
		})
	})
}

func TestStorePrefixAndIteration(t *testing.T) {
	Convey("Given a Store with namespaced keys", t, func() {
		s := New()
		s.Set([]byte("user:1"), []byte("alice"))
		s.Set([]byte("user:2"), []byte("bob"))
		s.Set([]byte("post:1"), []byte("hello world"))

		Convey("GetN returns only the matching namespace", func() {
			got := s.GetN([]byte("user:"))
			So(got, ShouldHaveLength, 2)
		})

		Convey("All iterates every key via Go 1.23 range-over-func", func() {
			count := 0
			for range s.All() {
				count++
			}
			So(count, ShouldEqual, 3)
		})

		Convey("AllPrefix iterates only the matching namespace", func() {
			count := 0
			for k := range s.AllPrefix([]byte("user:")) {
				So(string(k), ShouldStartWith, "user:")
				count++
			}
			So(count, ShouldEqual, 2)
		})

		Convey("DelN removes the whole namespace and reports the count", func() {
			n := s.DelN([]byte("user:"))
			So(n, ShouldEqual, 2)
			So(s.Len(), ShouldEqual, 1)
			_, ok := s.Get([]byte("post:1"))
			So(ok, ShouldBeTrue)
		})
	})
}

func TestStoreNodeCount(t *testing.T) {
	Convey("Given an empty Store", t, func() {
		s := New()

		Convey("it reports a single root node", func() {
			So(s.NodeCount(), ShouldEqual, 1)
		})

		Convey("inserting keys grows the node count", func() {
			s.Set([]byte("apple"), []byte("1"))
			s.Set([]byte("application"), []byte("2"))
			So(s.NodeCount(), ShouldBeGreaterThan, 1)
		})
	})
}
