// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package model ties the clipping core's pieces together: a shared
// vertex pool, a set of named groups, and the plot order clipping
// should process them in.
package model

import (
	"github.com/galvanized-logic/polyclip/clip"
	"github.com/galvanized-logic/polyclip/group"
	"github.com/galvanized-logic/polyclip/vertex"
)

// Model is a complete scene: one vertex pool shared by any number of
// groups, plus the order those groups should be clipped in (index 0 is
// furthest back).
type Model struct {
	Pool   vertex.Pool
	Groups []*group.Group
	Order  []int
}

// New returns an empty Model.
func New() *Model {
	return &Model{}
}

// AddGroup appends a new, empty group to the model, placing it last in
// plot order, and returns it.
func (m *Model) AddGroup() *group.Group {
	g := &group.Group{}
	m.Groups = append(m.Groups, g)
	m.Order = append(m.Order, len(m.Groups)-1)
	return g
}

// Clip runs occlusion clipping over the model's groups in its current
// plot order, using c's configuration.
func (m *Model) Clip(c *clip.Clipper) error {
	return c.ClipGroups(&m.Pool, m.Groups, m.Order)
}

// Finalize marks every vertex referenced by a surviving primitive as
// used and renumbers them, returning the number of vertices that
// survive. Call this after clipping and before emitting a model, so
// vertices orphaned by deleted primitives don't appear in the output.
func (m *Model) Finalize(verbose bool) int {
	for _, g := range m.Groups {
		g.SetUsed(&m.Pool)
	}
	m.Pool.FindDuplicates(verbose)
	return m.Pool.Renumber(verbose)
}

// SkewedPrimitive names one non-planar input polygon found by Validate:
// GroupIndex/PrimitiveIndex locate it, Side is the position in the
// primitive's side list (from primitive.SkewSide) of the first vertex
// that deviates from the plane of the polygon's first two edges.
type SkewedPrimitive struct {
	GroupIndex, PrimitiveIndex, Side int
}

// Validate scans every primitive in the model and reports any with more
// than three sides that are not actually planar. The clipper does not
// correct skew polygons (spec.md's Non-goals only require detecting
// them); callers may use this to reject or flatten bad input before
// clipping.
func (m *Model) Validate() []SkewedPrimitive {
	var bad []SkewedPrimitive
	for gi, g := range m.Groups {
		for pi := 0; pi < g.NumPrimitives(); pi++ {
			pr := g.Primitive(pi)
			if s := pr.SkewSide(&m.Pool); s >= 0 {
				bad = append(bad, SkewedPrimitive{GroupIndex: gi, PrimitiveIndex: pi, Side: s})
			}
		}
	}
	return bad
}
