// math/math_test.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"
)

func TestLinePointsDiagonal(t *testing.T) {
	pts := LinePoints(Point{0, 0}, Point{19, 19})
	if len(pts) != 20 {
		t.Fatalf("got %d points, expected 20", len(pts))
	}
	for i, p := range pts {
		if p != (Point{i, i}) {
			t.Errorf("point %d: got %v, expected (%d, %d)", i, p, i, i)
		}
	}
}

func TestLinePointsAllOctants(t *testing.T) {
	type testCase struct {
		name string
		a, b Point
		n    int
	}

	testCases := []testCase{
		{name: "Horizontal", a: Point{3, 4}, b: Point{9, 4}, n: 7},
		{name: "HorizontalReversed", a: Point{9, 4}, b: Point{3, 4}, n: 7},
		{name: "Vertical", a: Point{2, 1}, b: Point{2, 8}, n: 8},
		{name: "Shallow", a: Point{0, 0}, b: Point{7, 3}, n: 8},
		{name: "Steep", a: Point{0, 0}, b: Point{3, 7}, n: 8},
		{name: "ShallowNegative", a: Point{7, 3}, b: Point{0, 0}, n: 8},
		{name: "SteepNegative", a: Point{3, 7}, b: Point{0, 0}, n: 8},
		{name: "DiagonalUpLeft", a: Point{10, 10}, b: Point{4, 16}, n: 7},
		{name: "SinglePoint", a: Point{5, 5}, b: Point{5, 5}, n: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pts := LinePoints(tc.a, tc.b)
			if len(pts) != tc.n {
				t.Fatalf("got %d points, expected %d", len(pts), tc.n)
			}
			if pts[0] != tc.a {
				t.Errorf("line starts at %v, expected %v", pts[0], tc.a)
			}
			if pts[len(pts)-1] != tc.b {
				t.Errorf("line ends at %v, expected %v", pts[len(pts)-1], tc.b)
			}
			// 8-connectivity: successive points differ by at most one in
			// each ordinate, and always differ.
			for i := 1; i < len(pts); i++ {
				d := Sub2i(pts[i], pts[i-1])
				if d == (Point{0, 0}) || Abs(d[0]) > 1 || Abs(d[1]) > 1 {
					t.Errorf("points %d and %d not 8-connected: %v -> %v", i-1, i, pts[i-1], pts[i])
				}
			}
		})
	}
}

func TestCardinalOrdinalDirection(t *testing.T) {
	reversed := map[CardinalOrdinalDirection]CardinalOrdinalDirection{
		North:     South,
		NorthEast: SouthWest,
		East:      West,
		SouthEast: NorthWest,
	}
	for d, r := range reversed {
		if d.Reversed() != r {
			t.Errorf("%s reversed: got %s, expected %s", d, d.Reversed(), r)
		}
		if r.Reversed() != d {
			t.Errorf("%s reversed: got %s, expected %s", r, r.Reversed(), d)
		}
	}

	for d := North; d < NumCardinalOrdinalDirections; d++ {
		p, err := ParseCardinalOrdinalDirection(d.ShortString())
		if err != nil {
			t.Errorf("%s: unexpected error: %v", d.ShortString(), err)
		}
		if p != d {
			t.Errorf("%s: parsed to %s", d.ShortString(), p)
		}
	}

	if _, err := ParseCardinalOrdinalDirection("NNE"); err == nil {
		t.Errorf("no error was returned for an invalid direction")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(12, 0, 9) != 9 {
		t.Errorf("got %d, expected 9", Clamp(12, 0, 9))
	}
	if Clamp(-3, 0, 9) != 0 {
		t.Errorf("got %d, expected 0", Clamp(-3, 0, 9))
	}
	if Clamp(4, 0, 9) != 4 {
		t.Errorf("got %d, expected 4", Clamp(4, 0, 9))
	}
}
