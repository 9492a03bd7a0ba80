// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package primitive

import (
	"testing"

	"github.com/galvanized-logic/polyclip/vector"
)

type fakePool []vector.V3

func (p fakePool) Coords(v int) (vector.V3, bool) {
	if v < 0 || v >= len(p) {
		return vector.V3{}, false
	}
	return p[v], true
}

func square() (fakePool, Primitive) {
	pool := fakePool{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	}
	var pr Primitive
	for i := 0; i < 4; i++ {
		if !pr.AddSide(i, MaxSides) {
			panic("unexpected AddSide failure")
		}
	}
	return pool, pr
}

func TestAddSideRespectsMax(t *testing.T) {
	var pr Primitive
	for i := 0; i < 3; i++ {
		if !pr.AddSide(i, 3) {
			t.Fatalf("AddSide %d should have succeeded under max 3", i)
		}
	}
	if pr.AddSide(3, 3) {
		t.Errorf("AddSide should fail once max sides is reached")
	}
	if pr.NumSides() != 3 {
		t.Errorf("NumSides = %d, want 3", pr.NumSides())
	}
}

func TestEnsureNormalOfSquare(t *testing.T) {
	pool, pr := square()
	if _, ok := pr.Normal(); ok {
		t.Fatalf("normal should not be cached before EnsureNormal")
	}
	if !pr.EnsureNormal(pool) {
		t.Fatalf("EnsureNormal failed on a valid square")
	}
	n, _ := pr.Normal()
	if !vector.Equal(n, vector.V3{0, 0, 1}) {
		t.Errorf("normal = %v, want {0,0,1}", n)
	}
}

func TestReverseSidesInvalidatesNormalNotBBox(t *testing.T) {
	pool, pr := square()
	pr.EnsureNormal(pool)
	pr.EnsureBBox(pool)

	pr.ReverseSides()
	if _, ok := pr.Normal(); ok {
		t.Errorf("ReverseSides should invalidate the cached normal")
	}
	if _, _, ok := pr.BBox(); !ok {
		t.Errorf("ReverseSides should NOT invalidate the cached bbox")
	}

	pr.EnsureNormal(pool)
	n, _ := pr.Normal()
	if !vector.Equal(n, vector.V3{0, 0, -1}) {
		t.Errorf("reversed square normal = %v, want {0,0,-1}", n)
	}
}

func TestEnsureBBox(t *testing.T) {
	pool, pr := square()
	if !pr.EnsureBBox(pool) {
		t.Fatalf("EnsureBBox failed")
	}
	low, high, _ := pr.BBox()
	if !vector.Equal(low, vector.V3{0, 0, 0}) || !vector.Equal(high, vector.V3{1, 1, 0}) {
		t.Errorf("bbox = %v,%v, want {0,0,0},{1,1,0}", low, high)
	}
}

func TestSkewSideDetectsNonPlanarQuad(t *testing.T) {
	pool := fakePool{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 5}, // last vertex lifted out of plane
	}
	var pr Primitive
	for i := 0; i < 4; i++ {
		pr.AddSide(i, MaxSides)
	}
	if s := pr.SkewSide(pool); s != 3 {
		t.Errorf("SkewSide = %d, want 3", s)
	}
}

func TestSkewSideFlatQuad(t *testing.T) {
	pool, pr := square()
	if s := pr.SkewSide(pool); s != -1 {
		t.Errorf("SkewSide of a flat quad = %d, want -1", s)
	}
}
