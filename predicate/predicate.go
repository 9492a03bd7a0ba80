// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package predicate implements the geometric tests the splitter and
// clipper are built from: coplanarity, point/polygon containment,
// structural equality, and the two line/edge intersection tests used to
// decide where a polygon needs to be cut.
package predicate

import (
	"github.com/galvanized-logic/polyclip/coord"
	"github.com/galvanized-logic/polyclip/plane"
	"github.com/galvanized-logic/polyclip/primitive"
	"github.com/galvanized-logic/polyclip/vector"
)

// Pool resolves vertex-pool indices to coordinates. *vertex.Pool
// satisfies this.
type Pool interface {
	Coords(v int) (vector.V3, bool)
}

func highest(a, b coord.Coord) coord.Coord {
	if a > b {
		return a
	}
	return b
}

func lowest(a, b coord.Coord) coord.Coord {
	if a < b {
		return a
	}
	return b
}

// EdgeIntersectsLine treats a→b as a finite edge (with its end b
// exclusive) and c,d as describing an infinite line. It reports the
// point where the line crosses the edge, if any. Excluding b avoids
// reporting the same intersection twice when walking a polygon's
// consecutive edges.
func EdgeIntersectsLine(pool Pool, a, b, c, d int, p plane.Plane) (vector.V3, bool) {
	va, _ := pool.Coords(a)
	vb, _ := pool.Coords(b)
	vc, _ := pool.Coords(c)
	vd, _ := pool.Coords(d)

	ix3, ok := vector.Intersect(va, vb, vc, vd, p)
	if !ok {
		return vector.V3{}, false
	}

	ax, bx := va.X(p), vb.X(p)
	if coord.Less(ix3.X(p), lowest(ax, bx)) || coord.Less(highest(ax, bx), ix3.X(p)) {
		return vector.V3{}, false
	}

	ay, by := va.Y(p), vb.Y(p)
	if coord.Less(ix3.Y(p), lowest(ay, by)) || coord.Less(highest(ay, by), ix3.Y(p)) {
		return vector.V3{}, false
	}

	if vector.Equal(ix3, vb) {
		return vector.V3{}, false
	}
	return ix3, true
}

// EdgesIntersect treats both a,b and c,d as finite edges with inclusive
// ends, prefiltering on bounding-box overlap before computing the exact
// intersection point.
func EdgesIntersect(pool Pool, a, b, c, d int, p plane.Plane) (vector.V3, bool) {
	va, _ := pool.Coords(a)
	vb, _ := pool.Coords(b)
	vc, _ := pool.Coords(c)
	vd, _ := pool.Coords(d)

	ax, bx, cx, dx := va.X(p), vb.X(p), vc.X(p), vd.X(p)
	abLowX, abHighX := lowest(ax, bx), highest(ax, bx)
	cdLowX, cdHighX := lowest(cx, dx), highest(cx, dx)
	if coord.Less(cdHighX, abLowX) || coord.Less(abHighX, cdLowX) {
		return vector.V3{}, false
	}

	ay, by, cy, dy := va.Y(p), vb.Y(p), vc.Y(p), vd.Y(p)
	abLowY, abHighY := lowest(ay, by), highest(ay, by)
	cdLowY, cdHighY := lowest(cy, dy), highest(cy, dy)
	if coord.Less(cdHighY, abLowY) || coord.Less(abHighY, cdLowY) {
		return vector.V3{}, false
	}

	ix3, ok := vector.Intersect(va, vb, vc, vd, p)
	if !ok {
		return vector.V3{}, false
	}

	lowX, highX := highest(abLowX, cdLowX), lowest(abHighX, cdHighX)
	if coord.Less(ix3.X(p), lowX) || coord.Less(highX, ix3.X(p)) {
		return vector.V3{}, false
	}

	lowY, highY := highest(abLowY, cdLowY), lowest(abHighY, cdHighY)
	if coord.Less(ix3.Y(p), lowY) || coord.Less(highY, ix3.Y(p)) {
		return vector.V3{}, false
	}

	return ix3, true
}

// Coplanar reports whether p and q lie in the same plane. It requires
// matching normal directions when both have a computable normal (so
// two polygons facing opposite ways are never coplanar, even if they
// share a plane); with only one normal available it checks every vertex
// of the other polygon against that plane; with neither, it reports
// false.
func Coplanar(p, q *primitive.Primitive, vp primitive.VertexLookup) bool {
	gotP := p.EnsureNormal(vp)
	gotQ := q.EnsureNormal(vp)
	if !gotP && !gotQ {
		return false
	}

	norm, _ := p.Normal()
	nsidesQ := 1
	if gotP && gotQ {
		pn, _ := p.Normal()
		qn, _ := q.Normal()
		if !vector.Equal(pn, qn) {
			return false
		}
	} else {
		if !gotP {
			p, q = q, p
		}
		norm, _ = p.Normal()
		nsidesQ = q.NumSides()
	}

	pSide0, ok := p.Side(0)
	if !ok {
		return false
	}
	pv0, ok := vp.Coords(pSide0)
	if !ok {
		return false
	}

	for s := 0; s < nsidesQ; s++ {
		qSide, ok := q.Side(s)
		if !ok {
			return false
		}
		qv, ok := vp.Coords(qSide)
		if !ok {
			return false
		}
		var diff vector.V3
		diff.Sub(pv0, qv)
		if !coord.Equal(abs(vector.Dot(norm, diff)), 0) {
			return false
		}
	}
	return true
}

func abs(v coord.Coord) coord.Coord {
	if v < 0 {
		return -v
	}
	return v
}

// ContainsPoint reports whether the vertex at index v lies within pr,
// using a horizontal ray-casting test in the 2D plane p. Tolerance is
// generous by design: this decides which half of a split polygon to
// keep, so treating near-boundary points as contained is the safer
// default. A point that equals one of the polygon's own vertices
// (by index) is trivially contained.
func ContainsPoint(pr *primitive.Primitive, pool Pool, v int, p plane.Plane) bool {
	nsides := pr.NumSides()
	if nsides < 3 {
		return false
	}

	lastSide, _ := pr.Side(nsides - 1)
	if lastSide == v {
		return true
	}

	endV, ok := pool.Coords(lastSide)
	if !ok {
		return false
	}
	endX, endY := endV.X(p), endV.Y(p)

	point, ok := pool.Coords(v)
	if !ok {
		return false
	}
	px, py := point.X(p), point.Y(p)

	low, high, ok := pr.BBox()
	if !ok {
		return false
	}
	if !vector.XYGreaterOrEqual(point, low, p) || !vector.XYGreaterOrEqual(high, point, p) {
		return false
	}

	topY, ok := pr.TopY(pool, p)
	if !ok {
		return false
	}

	isInside := false
	for s := 0; s < nsides; s++ {
		v2, _ := pr.Side(s)
		if v2 == v {
			return true
		}

		start, ok := pool.Coords(v2)
		if !ok {
			return false
		}
		startX, startY := start.X(p), start.Y(p)

		highX := highest(startX, endX)
		if coord.Less(highX, px) {
			endX, endY = startX, startY
			continue
		}

		if coord.Equal(endY, startY) {
			lowX := lowest(startX, endX)
			if coord.Less(px, lowX) {
				endX, endY = startX, startY
				continue
			}
			if coord.Equal(py, endY) || coord.Equal(py, startY) {
				return true
			}
			endX, endY = startX, startY
			continue
		}

		lowY := lowest(startY, endY)
		if py < lowY {
			endX, endY = startX, startY
			continue
		}
		highY := highest(startY, endY)
		if py > highY {
			endX, endY = startX, startY
			continue
		}
		if py == highY && highY != topY {
			endX, endY = startX, startY
			continue
		}

		var intersectX coord.Coord
		if coord.Equal(endX, startX) {
			intersectX = startX
		} else {
			m := (endY - startY) / (endX - startX)
			intersectX = startX + (py-startY)/m
		}

		if coord.Equal(px, intersectX) {
			return true
		}
		if coord.Less(px, intersectX) {
			isInside = !isInside
		}

		endX, endY = startX, startY
	}

	return isInside
}

// Contains reports whether q fully encloses p: q's bounding box must
// cover p's, and every vertex of p must lie within q.
func Contains(q, p *primitive.Primitive, pool Pool, pl plane.Plane) bool {
	if !q.EnsureBBox(pool) || !p.EnsureBBox(pool) {
		return false
	}
	pLow, pHigh, _ := p.BBox()
	qLow, qHigh, _ := q.BBox()
	if !vector.XYGreaterOrEqual(pLow, qLow, pl) || !vector.XYGreaterOrEqual(qHigh, pHigh, pl) {
		return false
	}

	for t := 0; t < p.NumSides(); t++ {
		sideP, _ := p.Side(t)
		if !ContainsPoint(q, pool, sideP, pl) {
			return false
		}
	}
	return true
}

// Equal reports whether q and p reference the same vertices in the same
// cyclic order and direction, starting anywhere. Reversed winding is not
// considered equal.
func Equal(q, p *primitive.Primitive) bool {
	nsidesQ, nsidesP := q.NumSides(), p.NumSides()
	if nsidesP != nsidesQ {
		return false
	}
	if nsidesP == 0 {
		return true
	}

	firstSideP, _ := p.Side(0)
	s := 0
	found := false
	for ; !found && s < nsidesQ; s++ {
		sideQ, _ := q.Side(s)
		if sideQ == firstSideP {
			found = true
		}
	}
	if !found {
		return false
	}

	for t := 1; t < nsidesP; t, s = t+1, s+1 {
		sideP, _ := p.Side(t)
		if s >= nsidesQ {
			s = 0
		}
		sideQ, _ := q.Side(s)
		if sideQ != sideP {
			return false
		}
	}
	return true
}

// Intersect reports whether any edge of pr crosses the edge a,b, not
// counting edges that merely share a vertex with a or b. An
// intersection that lands exactly on the coordinates of a or b is
// treated as a shared endpoint, not a crossing, so that an edge a,b
// that only touches pr's boundary at one of its own ends doesn't
// register as intersecting it. A crossing at one of pr's own corners
// still counts.
func Intersect(pr *primitive.Primitive, a, b int, pool Pool, p plane.Plane) bool {
	nsides := pr.NumSides()
	if nsides < 3 {
		return false
	}

	lastSide, _ := pr.Side(nsides - 1)
	for s := 0; s < nsides; s++ {
		side, _ := pr.Side(s)

		if a != lastSide && b != lastSide && a != side && b != side {
			if ix, ok := EdgesIntersect(pool, a, b, lastSide, side, p); ok {
				acoords, ok := pool.Coords(a)
				if !ok {
					return false
				}
				if !vector.Equal(ix, acoords) {
					bcoords, ok := pool.Coords(b)
					if !ok {
						return false
					}
					if !vector.Equal(ix, bcoords) {
						return true
					}
				}
			}
		}
		lastSide = side
	}
	return false
}
