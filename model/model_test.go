// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package model

import (
	"testing"

	"github.com/galvanized-logic/polyclip/primitive"
	"github.com/galvanized-logic/polyclip/vector"
)

func TestAddGroupExtendsPlotOrder(t *testing.T) {
	m := New()
	g0 := m.AddGroup()
	g1 := m.AddGroup()
	if len(m.Groups) != 2 || len(m.Order) != 2 {
		t.Fatalf("expected 2 groups and 2 order entries, got %d and %d", len(m.Groups), len(m.Order))
	}
	if m.Order[0] != 0 || m.Order[1] != 1 {
		t.Errorf("plot order should default to declaration order, got %v", m.Order)
	}
	if g0 == g1 {
		t.Errorf("AddGroup should return distinct groups")
	}
}

func TestFinalizeDropsUnusedVertices(t *testing.T) {
	m := New()
	used := m.Pool.Add(vector.V3{0, 0, 0})
	unused := m.Pool.Add(vector.V3{1, 1, 1})
	_ = unused

	g := m.AddGroup()
	pr := primitive.Primitive{}
	pr.AddSide(used, primitive.MaxSides)
	pr.AddSide(used, primitive.MaxSides)
	pr.AddSide(used, primitive.MaxSides)
	g.Add(pr)

	n := m.Finalize(false)
	if n != 1 {
		t.Errorf("Finalize reported %d surviving vertices, want 1", n)
	}
	if !m.Pool.IsUsed(used) {
		t.Errorf("referenced vertex should be marked used")
	}
}

func TestValidateReportsSkewedPrimitive(t *testing.T) {
	m := New()
	m.Pool.Add(vector.V3{0, 0, 0})
	m.Pool.Add(vector.V3{1, 0, 0})
	m.Pool.Add(vector.V3{1, 1, 0})
	m.Pool.Add(vector.V3{0, 1, 5}) // lifted out of plane

	g := m.AddGroup()
	pr := primitive.Primitive{}
	for i := 0; i < 4; i++ {
		pr.AddSide(i, primitive.MaxSides)
	}
	g.Add(pr)

	bad := m.Validate()
	if len(bad) != 1 {
		t.Fatalf("Validate returned %d skewed primitives, want 1", len(bad))
	}
	if bad[0].GroupIndex != 0 || bad[0].PrimitiveIndex != 0 || bad[0].Side != 3 {
		t.Errorf("unexpected skew report: %+v", bad[0])
	}
}

func TestValidateAcceptsFlatPolygon(t *testing.T) {
	m := New()
	m.Pool.Add(vector.V3{0, 0, 0})
	m.Pool.Add(vector.V3{1, 0, 0})
	m.Pool.Add(vector.V3{1, 1, 0})
	m.Pool.Add(vector.V3{0, 1, 0})

	g := m.AddGroup()
	pr := primitive.Primitive{}
	for i := 0; i < 4; i++ {
		pr.AddSide(i, primitive.MaxSides)
	}
	g.Add(pr)

	if bad := m.Validate(); len(bad) != 0 {
		t.Errorf("Validate on a flat polygon = %+v, want none", bad)
	}
}
