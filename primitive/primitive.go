// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package primitive defines the polygon record clipping operates on: an
// ordered list of vertex-pool indices plus a colour and stable id, with
// lazily-cached derived state (normal, bounding box) invalidated on any
// mutation.
package primitive

import (
	"math"

	"github.com/galvanized-logic/polyclip/coord"
	"github.com/galvanized-logic/polyclip/plane"
	"github.com/galvanized-logic/polyclip/vector"
)

// MaxSides bounds how many sides a single Primitive can hold. Matches
// the original library's fixed-size side array; raise it by passing
// clip.WithMaxSides to a Clipper if a dataset genuinely needs more.
const MaxSides = 15

// VertexLookup resolves a vertex-pool index to its coordinates. A
// *vertex.Pool satisfies this.
type VertexLookup interface {
	Coords(v int) (vector.V3, bool)
}

// Primitive is a single coplanar polygon: a sequence of vertex indices,
// a colour, and a stable id, plus cached normal and bounding box.
type Primitive struct {
	Colour int
	ID     int

	sides []int

	normal      vector.V3
	hasNormal   bool
	low, high   vector.V3
	hasBBox     bool
}

// NumSides returns how many sides the primitive currently has.
func (pr *Primitive) NumSides() int {
	return len(pr.sides)
}

// Side returns the vertex-pool index of side s, or false if s is out of
// range.
func (pr *Primitive) Side(s int) (int, bool) {
	if s < 0 || s >= len(pr.sides) {
		return 0, false
	}
	return pr.sides[s], true
}

// AddSide appends a vertex-pool index as a new side and invalidates the
// cached normal and bounding box. It returns false, leaving the
// primitive unchanged, if that would exceed max (use MaxSides unless a
// Clipper was configured with a larger limit).
func (pr *Primitive) AddSide(v int, max int) bool {
	if len(pr.sides)+1 > max {
		return false
	}
	pr.sides = append(pr.sides, v)
	pr.hasNormal = false
	pr.hasBBox = false
	return true
}

// DeleteAll clears every side and invalidates cached state.
func (pr *Primitive) DeleteAll() {
	pr.sides = pr.sides[:0]
	pr.hasNormal = false
	pr.hasBBox = false
}

// ReverseSides reverses side order in place, flipping the polygon's
// winding. This invalidates the cached normal (direction depends on
// winding) but not the bounding box (extent does not).
func (pr *Primitive) ReverseSides() {
	for i, j := 0, len(pr.sides)-1; i < j; i, j = i+1, j-1 {
		pr.sides[i], pr.sides[j] = pr.sides[j], pr.sides[i]
	}
	pr.hasNormal = false
}

// makeNormal computes the normal from the first three vertices of the
// polygon: the cross product of (v1-v0) and (v2-v1), normalized. It
// returns false if there are fewer than three sides or the three
// vertices are collinear (zero-length cross product).
func (pr *Primitive) makeNormal(vp VertexLookup) bool {
	if len(pr.sides) < 3 {
		return false
	}
	v0, ok0 := vp.Coords(pr.sides[0])
	v1, ok1 := vp.Coords(pr.sides[1])
	v2, ok2 := vp.Coords(pr.sides[2])
	if !ok0 || !ok1 || !ok2 {
		return false
	}
	var e1, e2, n vector.V3
	e1.Sub(v1, v0)
	e2.Sub(v2, v1)
	n.Cross(e1, e2)
	if !n.Unit() {
		return false
	}
	pr.normal = n
	return true
}

// EnsureNormal computes and caches the normal if it is not already
// cached. It returns false if the normal could not be computed (fewer
// than 3 sides, or degenerate).
func (pr *Primitive) EnsureNormal(vp VertexLookup) bool {
	if pr.hasNormal {
		return true
	}
	if !pr.makeNormal(vp) {
		return false
	}
	pr.hasNormal = true
	return true
}

// Normal returns the cached normal and whether one is cached. Call
// EnsureNormal first if it might not be.
func (pr *Primitive) Normal() (vector.V3, bool) {
	return pr.normal, pr.hasNormal
}

// CacheNormal stores n as the cached normal without recomputing or
// verifying it. Used when a polygon derived from another (e.g. one half
// of a split) is known to share its parent's orientation.
func (pr *Primitive) CacheNormal(n vector.V3) {
	pr.normal = n
	pr.hasNormal = true
}

// SetNormal orients the primitive so its normal matches target (within
// tolerance), reversing its side order if necessary. vp must be able to
// resolve every side's coordinates and target must already be a unit
// vector comparable to what EnsureNormal would compute.
func (pr *Primitive) SetNormal(vp VertexLookup, target vector.V3) bool {
	if !pr.EnsureNormal(vp) {
		return false
	}
	if !vector.Equal(pr.normal, target) {
		pr.ReverseSides()
		if !pr.EnsureNormal(vp) {
			return false
		}
	}
	return vector.Equal(pr.normal, target)
}

// makeBBox scans every vertex and records the per-axis min/max. It
// returns false if the primitive has no sides.
func (pr *Primitive) makeBBox(vp VertexLookup) bool {
	if len(pr.sides) < 1 {
		return false
	}
	first, ok := vp.Coords(pr.sides[0])
	if !ok {
		return false
	}
	low, high := first, first
	for _, s := range pr.sides[1:] {
		c, ok := vp.Coords(s)
		if !ok {
			return false
		}
		for axis := 0; axis < 3; axis++ {
			if c[axis] < low[axis] {
				low[axis] = c[axis]
			}
			if c[axis] > high[axis] {
				high[axis] = c[axis]
			}
		}
	}
	pr.low, pr.high = low, high
	return true
}

// EnsureBBox computes and caches the bounding box if not already
// cached. It returns false if there are no sides.
func (pr *Primitive) EnsureBBox(vp VertexLookup) bool {
	if pr.hasBBox {
		return true
	}
	if !pr.makeBBox(vp) {
		return false
	}
	pr.hasBBox = true
	return true
}

// BBox returns the cached low and high corners and whether a box is
// cached. Call EnsureBBox first if it might not be.
func (pr *Primitive) BBox() (low, high vector.V3, ok bool) {
	return pr.low, pr.high, pr.hasBBox
}

// TopY returns the bounding box's high value on plane p's Y axis,
// computing and caching the box first if needed.
func (pr *Primitive) TopY(vp VertexLookup, p plane.Plane) (coord.Coord, bool) {
	if !pr.EnsureBBox(vp) {
		return 0, false
	}
	return pr.high.Y(p), true
}

// FindPlane ensures the normal is cached and derives a working Plane
// from it.
func (pr *Primitive) FindPlane(vp VertexLookup) (plane.Plane, bool) {
	if !pr.EnsureNormal(vp) {
		return plane.Plane{}, false
	}
	return plane.FindPlane(pr.normal), true
}

// SetUsed marks every vertex this primitive references as used in pool.
func (pr *Primitive) SetUsed(pool interface{ SetUsed(int) }) {
	for _, s := range pr.sides {
		pool.SetUsed(s)
	}
}

// SkewSide checks whether every vertex beyond the first three lies in
// the plane defined by the polygon's first two edges, using the scalar
// triple product against the cached normal. It returns the index of the
// first side found to deviate from that plane, or -1 if the polygon
// (beyond triangles, which are always planar) is flat. Detecting a skew
// side does not attempt to correct it: callers decide how to handle a
// non-planar input.
func (pr *Primitive) SkewSide(vp VertexLookup) int {
	if len(pr.sides) < 4 {
		return -1
	}
	if !pr.EnsureNormal(vp) {
		return -1
	}
	v0, _ := vp.Coords(pr.sides[0])
	for s := 3; s < len(pr.sides); s++ {
		vs, ok := vp.Coords(pr.sides[s])
		if !ok {
			continue
		}
		var e vector.V3
		e.Sub(vs, v0)
		if math.Abs(vector.Dot(pr.normal, e)) >= coord.Epsilon {
			return s
		}
	}
	return -1
}
