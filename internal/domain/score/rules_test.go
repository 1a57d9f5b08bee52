package score_test

import (
	"testing"

	"github.com/okian/courtside/internal/domain/score"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIsComplete(t *testing.T) {
	Convey("Given the race-to-11 win-by-2 rule", t, func() {
		cases := []struct {
			a, b int
			want bool
		}{
			{11, 9, true},
			{9, 11, true},
			{10, 9, false},
			{11, 10, false},
			{12, 10, true},
			{15, 14, false},
			{15, 13, true},
			{0, 0, false},
			{11, 0, true},
			{0, 11, true},
		}

		Convey("Then every boundary case matches the closed form", func() {
			for _, c := range cases {
				So(score.IsComplete(c.a, c.b), ShouldEqual, c.want)
			}
		})

		Convey("Then the rule is symmetric", func() {
			for a := 0; a <= 20; a++ {
				for b := 0; b <= 20; b++ {
					So(score.IsComplete(a, b), ShouldEqual, score.IsComplete(b, a))
				}
			}
		})

		Convey("Then it agrees with max(a,b) >= 11 && |a-b| >= 2 exhaustively", func() {
			for a := 0; a <= 25; a++ {
				for b := 0; b <= 25; b++ {
					hi, lo := a, b
					if b > a {
						hi, lo = b, a
					}
					So(score.IsComplete(a, b), ShouldEqual, hi >= 11 && hi-lo >= 2)
				}
			}
		})
	})
}
