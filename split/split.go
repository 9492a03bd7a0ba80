// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package split implements the polygon-splitting state machine: cutting
// a polygon into two along an infinite line through two given vertices
// (typically an edge of the polygon in front of it), adding a vertex
// wherever the line crosses an edge away from an existing vertex.
package split

import (
	"github.com/galvanized-logic/polyclip/plane"
	"github.com/galvanized-logic/polyclip/predicate"
	"github.com/galvanized-logic/polyclip/primitive"
	"github.com/galvanized-logic/polyclip/vector"
)

// VertexStore is the subset of *vertex.Pool the splitter needs: it must
// be able to resolve coordinates, find an existing vertex at a given
// position, and add a new one when a cut doesn't land on an existing
// vertex.
type VertexStore interface {
	predicate.Pool
	Find(coords vector.V3) int
	Add(coords vector.V3) int
}

type state int

const (
	none state = iota
	inProgress
	complete
)

// Split divides pr along the infinite line through vertex indices a and
// b. On success with split=true, pr is replaced by one half (the
// "retained" half) and out receives the other half, inheriting pr's
// original colour, id, and — if it was already cached — normal. If the
// line never crosses pr's boundary, split is false and neither pr nor
// out is touched.
//
// It returns ok=false only if growing the retained or new polygon would
// exceed maxSides.
func Split(pr *primitive.Primitive, a, b int, vp VertexStore, p plane.Plane, out *primitive.Primitive, maxSides int) (ok bool, split bool) {
	numSides := pr.NumSides()
	if numSides < 3 {
		return true, false
	}

	normal, hadNormal := pr.Normal()

	var tmp primitive.Primitive
	st := none

	lastSide, _ := pr.Side(numSides - 1)
	for s := 0; s < numSides; s++ {
		side, _ := pr.Side(s)

		if st != complete {
			if intersect, found := predicate.EdgeIntersectsLine(vp, lastSide, side, a, b, p); found {
				v := vp.Find(intersect)
				if v < 0 {
					v = vp.Add(intersect)
				}

				if st == inProgress {
					st = complete
					if v != lastSide {
						if !out.AddSide(v, maxSides) {
							return false, false
						}
					}
					if v != side {
						if !tmp.AddSide(v, maxSides) {
							return false, false
						}
					}
				} else {
					st = inProgress
					if v != lastSide {
						if !tmp.AddSide(v, maxSides) {
							return false, false
						}
					}
					*out = primitive.Primitive{}
					if v != side {
						if !out.AddSide(v, maxSides) {
							return false, false
						}
					}
				}
			}
		}

		target := &tmp
		if st == inProgress {
			target = out
		}
		if !target.AddSide(side, maxSides) {
			return false, false
		}
		lastSide = side
	}

	if st != complete {
		return true, false
	}

	pr.DeleteAll()
	for s := 0; s < tmp.NumSides(); s++ {
		side, _ := tmp.Side(s)
		if !pr.AddSide(side, maxSides) {
			return false, false
		}
	}

	out.Colour = pr.Colour
	out.ID = pr.ID
	if hadNormal {
		out.CacheNormal(normal)
	}

	return true, true
}
