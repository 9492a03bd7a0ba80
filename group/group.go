// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package group holds an ordered, insertable/deletable sequence of
// primitives. Clipping splits a polygon into two by inserting the new
// piece right after the original, and removes a polygon entirely once
// another has been found to fully cover it — both are index-based
// splices into a Group.
package group

import "github.com/galvanized-logic/polyclip/primitive"

// Group is a growable sequence of primitives.
type Group struct {
	primitives []primitive.Primitive
}

// NumPrimitives returns how many primitives the group holds.
func (g *Group) NumPrimitives() int {
	return len(g.primitives)
}

// Primitive returns a pointer to the primitive at index n, or nil if n
// is out of range. The pointer is valid only until the next Insert or
// Delete on this group, since those can move the backing storage.
func (g *Group) Primitive(n int) *primitive.Primitive {
	if n < 0 || n >= len(g.primitives) {
		return nil
	}
	return &g.primitives[n]
}

// Add appends pr to the end of the group, equivalent to Insert at
// NumPrimitives().
func (g *Group) Add(pr primitive.Primitive) {
	g.primitives = append(g.primitives, pr)
}

// Insert splices pr into the group at index n, shifting every following
// primitive up by one. n may equal NumPrimitives() to append.
func (g *Group) Insert(n int, pr primitive.Primitive) {
	g.primitives = append(g.primitives, primitive.Primitive{})
	copy(g.primitives[n+1:], g.primitives[n:])
	g.primitives[n] = pr
}

// Delete removes the primitive at index n, shifting every following
// primitive down by one.
func (g *Group) Delete(n int) {
	copy(g.primitives[n:], g.primitives[n+1:])
	g.primitives = g.primitives[:len(g.primitives)-1]
}

// SetUsed marks every vertex referenced by any primitive in the group as
// used in pool.
func (g *Group) SetUsed(pool interface{ SetUsed(int) }) {
	for i := range g.primitives {
		g.primitives[i].SetUsed(pool)
	}
}
