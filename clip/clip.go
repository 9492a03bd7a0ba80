// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package clip implements the painter's-algorithm occlusion clipper:
// given an ordered sequence of groups (back to front), it cuts away or
// deletes any part of a polygon that a later, coplanar polygon fully
// covers.
package clip

import (
	"fmt"
	"log"

	"github.com/galvanized-logic/polyclip/group"
	"github.com/galvanized-logic/polyclip/plane"
	"github.com/galvanized-logic/polyclip/predicate"
	"github.com/galvanized-logic/polyclip/primitive"
	"github.com/galvanized-logic/polyclip/split"
	"github.com/galvanized-logic/polyclip/vector"
)

// defaultMaxSplits bounds how many splits a single ClipGroups run may
// make before giving up, guarding against runaway clipping on
// degenerate input.
const defaultMaxSplits = 1024

// VertexStore is what the clipper needs from the shared vertex pool.
type VertexStore interface {
	predicate.Pool
	Find(coords vector.V3) int
	Add(coords vector.V3) int
}

// Clipper runs occlusion clipping over a set of groups, in the plot
// order the caller supplies.
type Clipper struct {
	verbose   bool
	maxSplits int
	maxSides  int
}

// Option configures a Clipper. See WithVerbose, WithMaxSplits, and
// WithMaxSides.
type Option func(*Clipper)

// WithVerbose enables progress logging of every split and deletion,
// matching the original library's verbose mode.
func WithVerbose() Option {
	return func(c *Clipper) { c.verbose = true }
}

// WithMaxSplits overrides the default split budget (1024) for a single
// ClipGroups run.
func WithMaxSplits(n int) Option {
	return func(c *Clipper) {
		if n > 0 {
			c.maxSplits = n
		}
	}
}

// WithMaxSides raises the per-polygon side limit above the package
// default (primitive.MaxSides).
func WithMaxSides(n int) Option {
	return func(c *Clipper) {
		if n > 0 {
			c.maxSides = n
		}
	}
}

// New builds a Clipper with the given options applied over sensible
// defaults.
func New(opts ...Option) *Clipper {
	c := &Clipper{maxSplits: defaultMaxSplits, maxSides: primitive.MaxSides}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Clipper) logf(format string, args ...any) {
	if c.verbose {
		log.Printf(format, args...)
	}
}

// Clip attempts to divide back wherever an edge of front either
// contains or crosses it, stopping after the first successful split so
// the caller can re-evaluate occlusion with the smaller pieces. It
// returns split=true and a populated out if a cut was made.
func (c *Clipper) Clip(back, front *primitive.Primitive, vp VertexStore, p plane.Plane, out *primitive.Primitive) (ok bool, split bool) {
	if !front.EnsureBBox(vp) || !back.EnsureBBox(vp) {
		return false, false
	}
	bLow, bHigh, _ := back.BBox()
	fLow, fHigh, _ := front.BBox()
	if !vector.XYLess(fLow, bHigh, p) || !vector.XYLess(bLow, fHigh, p) {
		return true, false
	}

	numSides := front.NumSides()
	if numSides < 3 {
		return false, false
	}

	lastSide, _ := front.Side(numSides - 1)
	lastInside := predicate.ContainsPoint(back, vp, lastSide, p)

	for t := 0; !split && t < numSides; t++ {
		side, _ := front.Side(t)
		thisInside := predicate.ContainsPoint(back, vp, side, p)

		if (lastInside && thisInside) || predicate.Intersect(back, lastSide, side, vp, p) {
			ok, split = split_(back, lastSide, side, vp, p, out, c.maxSides)
			if !ok {
				return false, false
			}
		}
		lastSide = side
		lastInside = thisInside
	}
	return true, split
}

func split_(back *primitive.Primitive, a, b int, vp VertexStore, p plane.Plane, out *primitive.Primitive, maxSides int) (bool, bool) {
	return split.Split(back, a, b, vp, p, out, maxSides)
}

// clipGroupVsGroup clips the primitive at backGroup[back] against every
// coplanar primitive in frontGroup[front:], splitting or deleting the
// back primitive as required. del reports whether the back
// primitive at index `back` was deleted (fully covered).
func (c *Clipper) clipGroupVsGroup(vp VertexStore, backGroup *group.Group, back int, frontGroup *group.Group, front int, nsplit *int) (del bool, ok bool) {
	backP := backGroup.Primitive(back)
	if _, got := backP.FindPlane(vp); !got {
		return false, true
	}

	sameGroup := backGroup == frontGroup

	for fg := front; fg < frontGroup.NumPrimitives(); fg++ {
		frontP := frontGroup.Primitive(fg)
		if frontP.NumSides() < 3 {
			continue
		}
		if !predicate.Coplanar(frontP, backP, vp) {
			continue
		}

		p, _ := backP.FindPlane(vp)
		covered := false
		for {
			if predicate.Equal(frontP, backP) || predicate.Contains(frontP, backP, vp, p) {
				covered = true
				break
			}

			var newBack primitive.Primitive
			ok, didSplit := c.Clip(backP, frontP, vp, p, &newBack)
			if !ok {
				c.logf("Clipping failed (too many sides?)")
				return false, false
			}
			if !didSplit {
				break
			}

			backGroup.Insert(back+1, newBack)
			*nsplit++
			if *nsplit >= c.maxSplits {
				c.logf("Aborted polygon clipping after %d splits", *nsplit)
				return false, false
			}

			if sameGroup {
				fg++
				frontP = frontGroup.Primitive(fg)
			}
			backP = backGroup.Primitive(back)

			c.logf("Split polygon behind another; %d splits so far", *nsplit)
		}

		if covered {
			c.logf("Deleting fully covered polygon")
			backGroup.Delete(back)
			return true, true
		}
	}

	return false, true
}

// clipGroup clips every primitive in groups[order[bg]] first against
// later primitives in the same group, then against every group later in
// plot order.
func (c *Clipper) clipGroup(vp VertexStore, groups []*group.Group, order []int, bg int, nsplit, ndel *int) bool {
	g := groups[order[bg]]

	for back := 0; back < g.NumPrimitives(); back++ {
		del, ok := c.clipGroupVsGroup(vp, g, back, g, back+1, nsplit)
		if !ok {
			return false
		}

		if !del {
			for fgIdx := bg + 1; fgIdx < len(order); fgIdx++ {
				if order[fgIdx] == order[bg] {
					continue
				}
				frontGroup := groups[order[fgIdx]]
				del, ok = c.clipGroupVsGroup(vp, g, back, frontGroup, 0, nsplit)
				if !ok {
					return false
				}
				if del {
					break
				}
			}
		}

		if del {
			*ndel++
			back--
		}
	}

	c.logf("Split %d and deleted %d in group %d", *nsplit, *ndel, order[bg])
	return true
}

// ClipGroups clips every group in order (index 0 = furthest back) over
// groups, in plot order, against everything later. It returns an error
// if a polygon exceeds the configured side limit or the split budget
// runs out before clipping settles.
func (c *Clipper) ClipGroups(vp VertexStore, groups []*group.Group, order []int) error {
	nsplit := 0
	for bg := range order {
		ndel := 0
		if !c.clipGroup(vp, groups, order, bg, &nsplit, &ndel) {
			if nsplit >= c.maxSplits {
				return fmt.Errorf("clip: aborted after %d splits", nsplit)
			}
			return fmt.Errorf("clip: too many sides")
		}
	}
	return nil
}
