package profile

import (
	"errors"
	"testing"

	"github.com/dsbox/dsbox/stack"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		Convey("Should report nothing for zero pushes", func() {
			result, err := Run(0, stack.DefaultConfig())
			So(err, ShouldBeNil)
			So(result.Growths, ShouldBeEmpty)
			So(result.MovesPerOp, ShouldEqual, 0)
		})

		Convey("Should reject a negative size", func() {
			_, err := Run(-1, stack.DefaultConfig())
			So(errors.Is(err, ErrInvalidSize), ShouldBeTrue)
		})

		Convey("Should record doubling growths", func() {
			result, err := Run(5, stack.DefaultConfig())
			So(err, ShouldBeNil)
			So(result.Growths, ShouldResemble, []Growth{
				{Push: 1, From: 0, To: 1, Moves: 0},
				{Push: 2, From: 1, To: 2, Moves: 1},
				{Push: 3, From: 2, To: 4, Moves: 2},
				{Push: 5, From: 4, To: 8, Moves: 4},
			})
			So(result.Moves, ShouldEqual, 7)
			So(result.MaxPush, ShouldEqual, 5)
			So(result.Cap, ShouldEqual, 8)
		})

		Convey("Should keep total moves within a constant multiple of n", func() {
			for _, factor := range []float64{1.5, 2, 3} {
				cfg := stack.DefaultConfig()
				cfg.GrowthFactor = factor
				for _, n := range []int{10, 100, 10_000} {
					result, err := Run(n, cfg)
					So(err, ShouldBeNil)

					// geometric growth by f copies at most n*f/(f-1) elements in total
					bound := float64(n) * factor / (factor - 1)
					So(float64(result.Moves), ShouldBeLessThanOrEqualTo, bound)
					So(lo.SumBy(result.Growths, func(g Growth) int { return g.Moves }), ShouldEqual, result.Moves)
				}
			}
		})
	})
}
