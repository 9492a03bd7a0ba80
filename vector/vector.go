// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package vector provides 3D vector arithmetic, axis access through a
// projection plane, and the line-intersection math the splitter and
// predicates are built on.
package vector

import (
	"math"

	"github.com/galvanized-logic/polyclip/coord"
	"github.com/galvanized-logic/polyclip/plane"
)

// V3 is a 3D vector or point, indexed [x, y, z].
type V3 [3]coord.Coord

// X, Y, Z return the component of v named by the corresponding field of
// p. Use these instead of v[0]/v[1]/v[2] directly whenever working in a
// projected 2D plane.
func (v V3) X(p plane.Plane) coord.Coord { return v[p.X] }
func (v V3) Y(p plane.Plane) coord.Coord { return v[p.Y] }
func (v V3) Z(p plane.Plane) coord.Coord { return v[p.Z] }

// Add sets v to a+b and returns v, so calls can be chained.
func (v *V3) Add(a, b V3) *V3 {
	v[0], v[1], v[2] = a[0]+b[0], a[1]+b[1], a[2]+b[2]
	return v
}

// Sub sets v to a-b and returns v.
func (v *V3) Sub(a, b V3) *V3 {
	v[0], v[1], v[2] = a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return v
}

// Cross sets v to a×b and returns v.
func (v *V3) Cross(a, b V3) *V3 {
	for n := 0; n < 3; n++ {
		v[n] = a[(n+1)%3]*b[(n+2)%3] - a[(n+2)%3]*b[(n+1)%3]
	}
	return v
}

// Dot returns a·b.
func Dot(a, b V3) coord.Coord {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Mag returns the magnitude of v.
func (v V3) Mag() coord.Coord {
	return math.Sqrt(Dot(v, v))
}

// Unit scales v to unit length in place and returns false if v has zero
// magnitude (left unchanged in that case).
func (v *V3) Unit() bool {
	m := v.Mag()
	if m == 0 {
		return false
	}
	v[0], v[1], v[2] = v[0]/m, v[1]/m, v[2]/m
	return true
}

// Equal reports whether a and b are equal component-wise within
// coord.Epsilon.
func Equal(a, b V3) bool {
	return coord.Equal(a[0], b[0]) && coord.Equal(a[1], b[1]) && coord.Equal(a[2], b[2])
}

// XYLess reports whether a is less than b on both axes of p, within
// tolerance.
func XYLess(a, b V3, p plane.Plane) bool {
	return coord.Less(a.X(p), b.X(p)) && coord.Less(a.Y(p), b.Y(p))
}

// XYGreaterOrEqual reports whether a is greater than or equal to b on
// both axes of p, within tolerance.
func XYGreaterOrEqual(a, b V3, p plane.Plane) bool {
	return coord.GreaterOrEqual(a.X(p), b.X(p)) && coord.GreaterOrEqual(a.Y(p), b.Y(p))
}

// yGradient returns the gradient (dy/dx) of the line from a to b in the
// plane p. Panics if the line is vertical in p; callers must check for
// that case first.
func yGradient(a, b V3, p plane.Plane) coord.Coord {
	ex := b.X(p) - a.X(p)
	if ex == 0 {
		panic("vector: yGradient of a vertical line")
	}
	return (b.Y(p) - a.Y(p)) / ex
}

// yIntercept returns the y-axis intercept of the line through a with
// gradient m, in the plane p.
func yIntercept(a V3, m coord.Coord, p plane.Plane) coord.Coord {
	return a.Y(p) - m*a.X(p)
}

// Intersect finds the point where the infinite line through a,b crosses
// the infinite line through c,d, projected onto plane p, then lifts the
// resulting point back to 3D by solving the same equation in the (x, z)
// plane. Returns false if the two lines are parallel (including the case
// where both are vertical).
func Intersect(a, b, c, d V3, p plane.Plane) (V3, bool) {
	abVertical := coord.Equal(a.X(p), b.X(p))
	cdVertical := coord.Equal(c.X(p), d.X(p))
	abHorizontal := coord.Equal(a.Y(p), b.Y(p))
	cdHorizontal := coord.Equal(c.Y(p), d.Y(p))

	var ix, iy coord.Coord
	switch {
	case abVertical:
		if cdVertical {
			return V3{}, false
		}
		ix = a.X(p)
		m2 := yGradient(c, d, p)
		c2 := yIntercept(c, m2, p)
		iy = m2*ix + c2

	case abHorizontal:
		iy = a.Y(p)
		switch {
		case cdVertical:
			ix = c.X(p)
		case cdHorizontal:
			return V3{}, false
		default:
			m2 := yGradient(c, d, p)
			c2 := yIntercept(c, m2, p)
			ix = (iy - c2) / m2
		}

	default:
		m1 := yGradient(a, b, p)
		c1 := yIntercept(a, m1, p)
		switch {
		case cdVertical:
			ix = c.X(p)
		default:
			m2 := yGradient(c, d, p)
			if coord.Equal(m1, m2) {
				return V3{}, false
			}
			c2 := yIntercept(c, m2, p)
			ix = (c2 - c1) / (m1 - m2)
		}
		iy = m1*ix + c1
	}

	// Solve for the dropped axis using the same line equation lifted
	// into the (x, z) plane.
	p2 := plane.Plane{X: p.X, Y: p.Z, Z: p.Y}
	var iz coord.Coord
	if abVertical {
		m2 := yGradient(c, d, p2)
		c2 := yIntercept(c, m2, p2)
		iz = m2*ix + c2
	} else {
		m1 := yGradient(a, b, p2)
		c1 := yIntercept(a, m1, p2)
		iz = m1*ix + c1
	}

	var out V3
	out[p.X] = ix
	out[p.Y] = iy
	out[p.Z] = iz
	return out, true
}
