package arena

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestArena(t *testing.T) {
	Convey("Given an empty Arena", t, func() {
		a := New[string](0)

		Convey("it has zero live entries", func() {
			So(a.Len(), ShouldEqual, 0)
		})

		Convey("when a value is inserted", func() {
			idx := a.Insert("hello")

			Convey("it can be read back", func() {
				v, ok := a.Get(idx)
				So(ok, ShouldBeTrue)
				So(*v, ShouldEqual, "hello")
				So(a.Len(), ShouldEqual, 1)
			})

			Convey("removing it returns the value and frees the slot", func() {
				v, ok := a.Remove(idx)
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, "hello")
				So(a.Len(), ShouldEqual, 0)

				_, ok = a.Get(idx)
				So(ok, ShouldBeFalse)
			})

			Convey("removing it twice is a no-op the second time", func() {
				a.Remove(idx)
				_, ok := a.Remove(idx)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("when a slot is freed and reused", func() {
			first := a.Insert("first")
			a.Remove(first)
			second := a.Insert("second")

			Convey("the hole is reused rather than growing the arena", func() {
				So(second, ShouldEqual, first)
			})

			Convey("the generation counter advances", func() {
				So(a.Generation(second), ShouldEqual, 1)
			})
		})

		Convey("an out-of-range index is reported absent, not a panic", func() {
			_, ok := a.Get(Index(999))
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given an Arena pre-sized with New", t, func() {
		a := New[int](64)

		Convey("it starts empty", func() {
			So(a.Len(), ShouldEqual, 0)
		})

		Convey("removing some entries does not disturb the remaining indices", func() {
			idxs := make([]Index, 10)
			for i := range idxs {
				idxs[i] = a.Insert(i)
			}

			a.Remove(idxs[3])
			a.Remove(idxs[7])

			for i, idx := range idxs {
				if i == 3 || i == 7 {
					continue
				}
				v, ok := a.Get(idx)
				So(ok, ShouldBeTrue)
				So(*v, ShouldEqual, i)
			}
		})
	})
}
