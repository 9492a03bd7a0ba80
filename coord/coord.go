// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package coord provides the tolerance-based scalar comparisons used
// throughout the clipping core. Geometry arriving from arbitrary sources
// rarely lands on exact values, so every comparison in this library goes
// through Equal or Less rather than ==, <, etc.
package coord

import "math"

// Coord is the scalar type used for every vertex component and derived
// value (normals, bounding boxes, intersection points).
type Coord = float64

// Epsilon is the tolerance below which two Coord values are considered
// equal. Matches the original C library's MAX_FLT_ERR.
const Epsilon Coord = 1e-3

// Equal reports whether a and b are within Epsilon of each other.
//
// This relation is deliberately not transitive: Equal(0, 0.0009) and
// Equal(0.0009, 0.0018) can both be true while Equal(0, 0.0018) is false.
// Vertex deduplication relies on exactly this tolerance, applied pairwise,
// not on a transitive equivalence class.
func Equal(a, b Coord) bool {
	return math.Abs(a-b) < Epsilon
}

// Less reports whether a is less than b by at least Epsilon. Two values
// within Epsilon of each other are neither Less nor Greater of one
// another.
func Less(a, b Coord) bool {
	return (b - a) >= Epsilon
}

// Greater reports whether a is greater than b by at least Epsilon.
func Greater(a, b Coord) bool {
	return Less(b, a)
}

// GreaterOrEqual reports the negation of Less(a, b).
func GreaterOrEqual(a, b Coord) bool {
	return !Less(a, b)
}

// LessOrEqual reports the negation of Greater(a, b).
func LessOrEqual(a, b Coord) bool {
	return !Greater(a, b)
}
