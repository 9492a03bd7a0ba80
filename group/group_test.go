// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package group

import (
	"testing"

	"github.com/galvanized-logic/polyclip/primitive"
)

func idsOf(g *Group) []int {
	ids := make([]int, g.NumPrimitives())
	for i := range ids {
		ids[i] = g.Primitive(i).ID
	}
	return ids
}

func TestAddAppendsInOrder(t *testing.T) {
	var g Group
	g.Add(primitive.Primitive{ID: 1})
	g.Add(primitive.Primitive{ID: 2})
	if got := idsOf(&g); got[0] != 1 || got[1] != 2 {
		t.Errorf("ids = %v, want [1 2]", got)
	}
}

func TestInsertSplicesAtIndex(t *testing.T) {
	var g Group
	g.Add(primitive.Primitive{ID: 1})
	g.Add(primitive.Primitive{ID: 2})
	g.Insert(1, primitive.Primitive{ID: 99})
	if got := idsOf(&g); got[0] != 1 || got[1] != 99 || got[2] != 2 {
		t.Errorf("ids = %v, want [1 99 2]", got)
	}
}

func TestInsertAtEndAppends(t *testing.T) {
	var g Group
	g.Add(primitive.Primitive{ID: 1})
	g.Insert(g.NumPrimitives(), primitive.Primitive{ID: 2})
	if got := idsOf(&g); got[0] != 1 || got[1] != 2 {
		t.Errorf("ids = %v, want [1 2]", got)
	}
}

func TestDeleteShiftsDown(t *testing.T) {
	var g Group
	g.Add(primitive.Primitive{ID: 1})
	g.Add(primitive.Primitive{ID: 2})
	g.Add(primitive.Primitive{ID: 3})
	g.Delete(1)
	if got := idsOf(&g); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("ids = %v, want [1 3]", got)
	}
}

func TestPrimitiveOutOfRangeReturnsNil(t *testing.T) {
	var g Group
	g.Add(primitive.Primitive{ID: 1})
	if g.Primitive(-1) != nil || g.Primitive(1) != nil {
		t.Errorf("out-of-range Primitive lookups should return nil")
	}
}

type fakeVertexStore map[int]bool

func (f fakeVertexStore) SetUsed(v int) { f[v] = true }

func TestSetUsedMarksEveryReferencedVertex(t *testing.T) {
	var g Group
	pr := primitive.Primitive{}
	pr.AddSide(3, primitive.MaxSides)
	pr.AddSide(7, primitive.MaxSides)
	g.Add(pr)

	pool := fakeVertexStore{}
	g.SetUsed(pool)

	if !pool[3] || !pool[7] {
		t.Errorf("expected vertices 3 and 7 marked used, got %v", pool)
	}
}
