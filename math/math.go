// math/math.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

///////////////////////////////////////////////////////////////////////////
// grid points

// Point is an integer grid coordinate, x then y. Points stored in a world
// are always non-negative; intermediate arithmetic may go signed, which is
// why the components are plain ints.
type Point [2]int

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p[0], p[1])
}

// a+b
func Add2i(a, b Point) Point {
	return Point{a[0] + b[0], a[1] + b[1]}
}

// a-b
func Sub2i(a, b Point) Point {
	return Point{a[0] - b[0], a[1] - b[1]}
}

///////////////////////////////////////////////////////////////////////////
// numeric helpers

func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

func Sign[T constraints.Signed](x T) T {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

///////////////////////////////////////////////////////////////////////////
// digital lines

// LinePoints returns the grid points of the digital line from a to b,
// inclusive of both endpoints. It runs the usual integer error-accumulator
// algorithm, generalized to all eight octants by walking the major axis
// (whichever of |dx|, |dy| is larger) and letting the minor axis catch up
// when the accumulated error crosses the half-cell threshold. The result
// always has exactly max(|dx|, |dy|)+1 points and is 8-connected: each
// point differs from its predecessor by at most one in each ordinate.
func LinePoints(a, b Point) []Point {
	dx, dy := b[0]-a[0], b[1]-a[1]
	sx, sy := Sign(dx), Sign(dy)
	dx, dy = Abs(dx), Abs(dy)

	n := max(dx, dy) + 1
	pts := make([]Point, 0, n)

	x, y := a[0], a[1]
	if dx >= dy {
		d := 2*dy - dx
		for i := 0; i < n; i++ {
			pts = append(pts, Point{x, y})
			if d > 0 {
				y += sy
				d -= 2 * dx
			}
			d += 2 * dy
			x += sx
		}
	} else {
		// Steep line: swap the roles of x and y so the same inner loop
		// applies.
		d := 2*dx - dy
		for i := 0; i < n; i++ {
			pts = append(pts, Point{x, y})
			if d > 0 {
				x += sx
				d -= 2 * dy
			}
			d += 2 * dx
			y += sy
		}
	}

	return pts
}
