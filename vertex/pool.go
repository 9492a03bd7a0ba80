// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package vertex implements the shared vertex pool every primitive's
// sides index into. Primitives never store coordinates directly: they
// store indices into a Pool, so that deduplicating or renumbering
// vertices only ever touches the pool.
package vertex

import (
	"log"
	"sort"

	"github.com/galvanized-logic/polyclip/vector"
)

// record is one stored vertex. Coords is the position. ID starts equal
// to the vertex's own index and is rewritten by Renumber once duplicates
// have been resolved. Dup, when >= 0, names another vertex this one is a
// duplicate of; ID lookups follow that chain. Marked flags vertices
// that are actually referenced by some primitive side.
type record struct {
	coords vector.V3
	id     int
	dup    int
	marked bool
}

// Pool is a growable collection of vertices shared by every primitive in
// a Model.
type Pool struct {
	vertices []record
}

// minCapacity is the smallest size Pool grows its backing storage to to
// avoid repeated reallocation for small meshes.
const minCapacity = 8

// Add appends a new vertex at coords and returns its index. The new
// vertex starts with id equal to its own index, no duplicate link, and
// unmarked.
func (p *Pool) Add(coords vector.V3) int {
	if len(p.vertices) == cap(p.vertices) {
		grown := make([]record, len(p.vertices), max(2*cap(p.vertices), minCapacity))
		copy(grown, p.vertices)
		p.vertices = grown
	}
	p.vertices = append(p.vertices, record{
		coords: coords,
		id:     len(p.vertices),
		dup:    -1,
		marked: false,
	})
	return len(p.vertices) - 1
}

// NumVertices returns the number of vertices held, including any later
// marked as duplicates.
func (p *Pool) NumVertices() int {
	return len(p.vertices)
}

// Coords returns the coordinates stored at index v, or false if v is out
// of range.
func (p *Pool) Coords(v int) (vector.V3, bool) {
	if v < 0 || v >= len(p.vertices) {
		return vector.V3{}, false
	}
	return p.vertices[v].coords, true
}

// SetUsed marks the vertex at index v as referenced by some primitive.
// Out-of-range indices are ignored.
func (p *Pool) SetUsed(v int) {
	if v < 0 || v >= len(p.vertices) {
		return
	}
	p.vertices[v].marked = true
}

// SetAllUsed marks every vertex as used. Primarily useful for emitting
// an unclipped mesh verbatim.
func (p *Pool) SetAllUsed() {
	for i := range p.vertices {
		p.vertices[i].marked = true
	}
}

// IsUsed reports whether the vertex at index v has been marked used. An
// out-of-range index is reported as unused.
func (p *Pool) IsUsed(v int) bool {
	if v < 0 || v >= len(p.vertices) {
		return false
	}
	return p.vertices[v].marked
}

// ID returns the stable id of the vertex at index v, following its
// duplicate chain to the representative vertex it was merged into. It
// returns -1 if v is out of range.
func (p *Pool) ID(v int) int {
	if v < 0 || v >= len(p.vertices) {
		return -1
	}
	for p.vertices[v].dup >= 0 {
		v = p.vertices[v].dup
	}
	return p.vertices[v].id
}

// Find performs a linear scan for a vertex equal to coords (within
// tolerance) and returns its index, or -1 if none is found.
func (p *Pool) Find(coords vector.V3) int {
	for i := range p.vertices {
		if vector.Equal(p.vertices[i].coords, coords) {
			return i
		}
	}
	return -1
}

// FindDuplicates sorts a scratch copy of the vertex indices
// lexicographically by coordinate (exact ties keep insertion order), then
// links each vertex found equal (within tolerance) to the representative
// of the current run in sorted order, i.e. the first vertex of that run;
// a vertex not equal to the representative starts a new run. When a
// duplicate vertex was marked
// used, the mark is transferred to the representative it now points at.
// It returns the number of vertices found to be duplicates. When verbose
// is set, it logs the count found.
func (p *Pool) FindDuplicates(verbose bool) int {
	n := len(p.vertices)
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := p.vertices[sorted[i]].coords, p.vertices[sorted[j]].coords
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})

	found := 0
	last := 0
	for i := 1; i < n; i++ {
		cur := sorted[i]
		if vector.Equal(p.vertices[cur].coords, p.vertices[sorted[last]].coords) {
			p.vertices[cur].dup = sorted[last]
			if p.vertices[cur].marked {
				p.vertices[sorted[last]].marked = true
				p.vertices[cur].marked = false
			}
			found++
		} else {
			last = i
		}
	}
	if verbose {
		log.Printf("vertex: found %d duplicates", found)
	}
	return found
}

// Renumber walks vertices in original insertion order and assigns each
// marked (i.e. still referenced) vertex a new, densely-packed id
// starting from 0. It returns the number of surviving vertices. When
// verbose is set, it logs the surviving count.
func (p *Pool) Renumber(verbose bool) int {
	next := 0
	for i := range p.vertices {
		if p.vertices[i].marked {
			p.vertices[i].id = next
			next++
		}
	}
	if verbose {
		log.Printf("vertex: %d vertices survive renumbering", next)
	}
	return next
}
