package stack

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		s := New[int]()

		Convey("Should start empty", func() {
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
			So(s.Cap(), ShouldEqual, 0)
			So(s.Pop().IsAbsent(), ShouldBeTrue)
			So(s.Peek().IsAbsent(), ShouldBeTrue)
		})

		Convey("Should push, peek and pop in LIFO order", func() {
			s.Push(1)
			s.Push(2)
			s.Push(3)
			So(s.Len(), ShouldEqual, 3)
			So(s.Peek().MustGet(), ShouldEqual, 3)

			So(s.Pop().MustGet(), ShouldEqual, 3)
			So(s.Len(), ShouldEqual, 2)
			So(s.Pop().MustGet(), ShouldEqual, 2)
			So(s.Pop().MustGet(), ShouldEqual, 1)

			So(s.Pop().IsAbsent(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("Should not remove the element on peek", func() {
			s.Push(42)
			s.Push(314)
			So(s.Peek().MustGet(), ShouldEqual, 314)
			So(s.Len(), ShouldEqual, 2)
		})

		Convey("Should clear and stay usable", func() {
			s.Push(1)
			s.Push(2)
			capacity := s.Cap()
			s.Clear()
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Cap(), ShouldEqual, capacity)
			So(s.Pop().IsAbsent(), ShouldBeTrue)

			s.Push(7)
			So(s.Peek().MustGet(), ShouldEqual, 7)
		})

		Convey("Should treat clear on an empty stack as a no-op", func() {
			s.Clear()
			s.Clear()
			So(s.Len(), ShouldEqual, 0)
			So(s.Cap(), ShouldEqual, 0)
		})

		Convey("Should render top to bottom", func() {
			So(s.String(), ShouldEqual, "stack[]")
			s.Push(1)
			s.Push(2)
			So(s.String(), ShouldEqual, "stack[2 1]")
		})
	})
}

func TestZeroValue(t *testing.T) {
	Convey("A zero value Stack", t, func() {
		var s Stack[string]

		Convey("Should behave like New", func() {
			So(s.IsEmpty(), ShouldBeTrue)
			s.Push("a")
			s.Push("b")
			So(s.Cap(), ShouldEqual, 2)
			So(s.Pop().MustGet(), ShouldEqual, "b")
			So(s.Values(), ShouldResemble, []string{"a"})
		})
	})
}

func TestFrom(t *testing.T) {
	Convey("From", t, func() {
		Convey("Should treat the last item as the top", func() {
			s := From(1, 2, 3)
			So(s.Len(), ShouldEqual, 3)
			So(s.Peek().MustGet(), ShouldEqual, 3)
			So(s.Values(), ShouldResemble, []int{3, 2, 1})
		})

		Convey("Should not alias the caller's slice", func() {
			items := []int{1, 2}
			s := From(items...)
			items[1] = 99
			So(s.Peek().MustGet(), ShouldEqual, 2)
		})

		Convey("Should build an empty stack from no items", func() {
			So(From[int]().IsEmpty(), ShouldBeTrue)
		})

		Convey("FromSeq should push in sequence order", func() {
			s := FromSeq(slices.Values([]string{"x", "y"}))
			So(s.Values(), ShouldResemble, []string{"y", "x"})
		})
	})
}

func TestIteration(t *testing.T) {
	Convey("Iteration", t, func() {
		s := New[int]()

		Convey("Should yield nothing for an empty stack", func() {
			So(slices.Collect(s.All()), ShouldBeEmpty)
			So(s.Iter().Next().IsAbsent(), ShouldBeTrue)
		})

		Convey("Should walk from top to bottom", func() {
			s.Push(42)
			s.Push(314)
			So(slices.Collect(s.All()), ShouldResemble, []int{314, 42})
		})

		Convey("Should be restartable", func() {
			s.Push(1)
			s.Push(2)
			seq := s.All()
			So(slices.Collect(seq), ShouldResemble, slices.Collect(seq))

			it := s.Iter()
			So(it.Next().MustGet(), ShouldEqual, 2)
			So(it.Next().MustGet(), ShouldEqual, 1)
			So(it.Next().IsAbsent(), ShouldBeTrue)
			it.Reset()
			So(it.Next().MustGet(), ShouldEqual, 2)
		})

		Convey("Should stop early when the consumer breaks", func() {
			s.Push(1)
			s.Push(2)
			s.Push(3)
			var seen []int
			for v := range s.All() {
				seen = append(seen, v)
				if len(seen) == 2 {
					break
				}
			}
			So(seen, ShouldResemble, []int{3, 2})
		})

		Convey("Should panic when mutated mid-iteration", func() {
			s.Push(1)
			s.Push(2)
			So(func() {
				for v := range s.All() {
					s.Push(v)
				}
			}, ShouldPanicWith, ErrConcurrentModification)

			it := s.Iter()
			s.Pop()
			So(func() { it.Next() }, ShouldPanicWith, ErrConcurrentModification)

			it.Reset()
			So(it.Next().IsPresent(), ShouldBeTrue)
		})

		Convey("Should not be invalidated by clearing an empty stack", func() {
			it := s.Iter()
			s.Clear()
			So(func() { it.Next() }, ShouldNotPanic)
		})
	})
}

func TestConfig(t *testing.T) {
	Convey("Config", t, func() {
		Convey("DefaultConfig should validate", func() {
			So(DefaultConfig().Validate(), ShouldBeNil)
		})

		Convey("Should reject bad values", func() {
			bad := []Config{
				{InitialCapacity: -1, GrowthFactor: 2},
				{GrowthFactor: 1},
				{GrowthFactor: 0.5},
				{GrowthFactor: math.NaN()},
				{GrowthFactor: math.Inf(1)},
				{GrowthFactor: 1e20},
				{GrowthFactor: MaxGrowthFactor + 0.5},
				{GrowthFactor: 2, ShrinkThreshold: mo.Some(0.0)},
				{GrowthFactor: 2, ShrinkThreshold: mo.Some(0.75)},
			}
			for _, cfg := range bad {
				err := cfg.Validate()
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)

				_, err = NewWithConfig[int](cfg)
				So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
			}
		})

		Convey("Should allocate the initial capacity eagerly", func() {
			s, err := NewWithConfig[int](Config{InitialCapacity: 8, GrowthFactor: 1.5})
			So(err, ShouldBeNil)
			So(s.Cap(), ShouldEqual, 8)
			So(s.IsEmpty(), ShouldBeTrue)

			for i := range 9 {
				s.Push(i)
			}
			So(s.Cap(), ShouldEqual, 12)
			So(s.Stats().Growths, ShouldEqual, 1)
			So(s.Stats().Moves, ShouldEqual, 8)
		})

		Convey("Should always grow by at least one slot", func() {
			s, err := NewWithConfig[int](Config{InitialCapacity: 1, GrowthFactor: 1.01})
			So(err, ShouldBeNil)
			s.Push(1)
			s.Push(2)
			So(s.Cap(), ShouldEqual, 2)
		})

		Convey("Should keep pushing with the largest accepted factor", func() {
			s, err := NewWithConfig[int](Config{GrowthFactor: MaxGrowthFactor})
			So(err, ShouldBeNil)
			So(func() {
				for i := range 1000 {
					s.Push(i)
				}
			}, ShouldNotPanic)
			So(s.Len(), ShouldEqual, 1000)
			So(s.Cap(), ShouldEqual, 4096)
			So(s.Peek().MustGet(), ShouldEqual, 999)
		})
	})
}

func TestGrowth(t *testing.T) {
	Convey("Growth", t, func() {
		Convey("Should double from one", func() {
			s := New[int]()
			var capacities []int
			for i := range 9 {
				s.Push(i)
				capacities = append(capacities, s.Cap())
			}
			So(capacities, ShouldResemble, []int{1, 2, 4, 4, 8, 8, 8, 8, 16})
		})

		Convey("Should keep total moves linear in the number of pushes", func() {
			for _, n := range []int{1, 10, 1000, 4097} {
				s := New[int]()
				for i := range n {
					s.Push(i)
				}
				So(s.Stats().Moves, ShouldBeLessThanOrEqualTo, 2*n)
				So(s.Len(), ShouldEqual, n)
			}
		})

		Convey("Should never reallocate on pop without a shrink threshold", func() {
			s := From(1, 2, 3, 4)
			for !s.IsEmpty() {
				s.Pop()
			}
			So(s.Cap(), ShouldEqual, 4)
			So(s.Stats().Shrinks, ShouldEqual, 0)
		})
	})
}

func TestShrink(t *testing.T) {
	Convey("Shrink", t, func() {
		s, err := NewWithConfig[int](Config{GrowthFactor: 2, ShrinkThreshold: mo.Some(0.25)})
		So(err, ShouldBeNil)
		for i := range 16 {
			s.Push(i)
		}
		So(s.Cap(), ShouldEqual, 16)

		Convey("Should shrink once len drops below the threshold and keep contents", func() {
			for range 13 {
				s.Pop()
			}
			So(s.Len(), ShouldEqual, 3)
			So(s.Cap(), ShouldEqual, 8)
			So(s.Stats().Shrinks, ShouldEqual, 1)
			So(s.Values(), ShouldResemble, []int{2, 1, 0})
		})

		Convey("Should keep shrinking down while preserving cap >= len", func() {
			for !s.IsEmpty() {
				s.Pop()
				So(s.Cap(), ShouldBeGreaterThanOrEqualTo, s.Len())
			}
			So(s.Cap(), ShouldEqual, 2)
		})

		Convey("Should not shrink below the initial capacity", func() {
			s, err := NewWithConfig[int](Config{InitialCapacity: 8, GrowthFactor: 2, ShrinkThreshold: mo.Some(0.5)})
			So(err, ShouldBeNil)
			for i := range 32 {
				s.Push(i)
			}
			for !s.IsEmpty() {
				s.Pop()
			}
			So(s.Cap(), ShouldEqual, 8)
		})
	})
}

func TestRandomOperations(t *testing.T) {
	Convey("Random operation sequences", t, func() {
		rng := rand.New(rand.NewPCG(1, 2))

		Convey("Should match a slice model", func() {
			configs := []Config{
				DefaultConfig(),
				{InitialCapacity: 3, GrowthFactor: 1.5, ShrinkThreshold: mo.Some(0.25)},
				{GrowthFactor: 3, ShrinkThreshold: mo.Some(0.5)},
			}

			for _, cfg := range configs {
				s, err := NewWithConfig[int](cfg)
				So(err, ShouldBeNil)

				var model []int
				pushes, pops := 0, 0
				for i := range 2000 {
					switch rng.IntN(5) {
					case 0, 1, 2:
						s.Push(i)
						model = append(model, i)
						pushes++
					case 3:
						got := s.Pop()
						if len(model) == 0 {
							So(got.IsAbsent(), ShouldBeTrue)
							continue
						}
						So(got.MustGet(), ShouldEqual, model[len(model)-1])
						model = model[:len(model)-1]
						pops++
					case 4:
						if len(model) == 0 {
							So(s.Peek().IsAbsent(), ShouldBeTrue)
						} else {
							So(s.Peek().MustGet(), ShouldEqual, model[len(model)-1])
						}
					}
				}

				So(s.Len(), ShouldEqual, pushes-pops)
				So(s.Cap(), ShouldBeGreaterThanOrEqualTo, s.Len())

				reversed := slices.Clone(model)
				slices.Reverse(reversed)
				So(s.Values(), ShouldResemble, reversed)
			}
		})
	})
}

func TestCapacityOverflow(t *testing.T) {
	Convey("A stack whose buffer cannot grow", t, func() {
		s := &Stack[struct{}]{buf: make([]struct{}, math.MaxInt), n: math.MaxInt}

		Convey("Should panic on push instead of wrapping around", func() {
			So(func() { s.Push(struct{}{}) }, ShouldPanicWith, ErrCapacityOverflow)
			So(s.Len(), ShouldEqual, math.MaxInt)
		})
	})
}
