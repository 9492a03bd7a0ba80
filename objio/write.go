// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package objio

import (
	"fmt"
	"io"

	"github.com/galvanized-logic/polyclip/group"
	"github.com/galvanized-logic/polyclip/model"
	"github.com/galvanized-logic/polyclip/primitive"
	"github.com/galvanized-logic/polyclip/vertex"
)

// VertexStyle selects how a face record's vertex numbers are computed
// relative to the file's running vertex count.
type VertexStyle int

const (
	// VertexPositive numbers vertices as 1 + total-vertices-so-far + id,
	// i.e. absolute, 1-based, counting from the start of the file.
	VertexPositive VertexStyle = iota
	// VertexNegative numbers vertices relative to the current object's
	// vertex count, as negative offsets from the end (OBJ's relative
	// vertex reference form).
	VertexNegative
)

// MeshStyle controls whether and how primitives with more than three
// sides get triangulated on emission.
type MeshStyle int

const (
	// MeshNoChange emits every primitive as a single record: a point
	// for one side, a line for two, a face for three or more.
	MeshNoChange MeshStyle = iota
	// MeshTriangleFan emits a fan of triangles sharing the primitive's
	// first vertex.
	MeshTriangleFan
	// MeshTriangleStrip emits an alternating strip of triangles.
	MeshTriangleStrip
)

// GetColour resolves the colour to use for a primitive; if nil,
// pr.Colour is used directly.
type GetColour func(pr *primitive.Primitive) int

// GetMaterial names the material for a colour; if nil, "colour_<n>" is
// used.
type GetMaterial func(colour int) string

// WriteVertices writes every used vertex in pool as a "v x y z" record,
// preceded by a vertex-count comment. vobject is the count printed in
// that header comment (Write passes the number of used vertices).
func WriteVertices(w io.Writer, pool *vertex.Pool, vobject int) error {
	if _, err := fmt.Fprintf(w, "\n# %d vertices\n", vobject); err != nil {
		return err
	}
	for v := 0; v < pool.NumVertices(); v++ {
		if !pool.IsUsed(v) {
			continue
		}
		coords, ok := pool.Coords(v)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "v %f %f %f\n", coords[0], coords[1], coords[2]); err != nil {
			return err
		}
	}
	return nil
}

func convertVNum(pool *vertex.Pool, v, vtotal, vobject int, vstyle VertexStyle) int {
	id := pool.ID(v)
	if vstyle == VertexNegative {
		return -(vobject - id)
	}
	return 1 + vtotal + id
}

func writePrimitive(w io.Writer, pr *primitive.Primitive, vtotal, vobject int, pool *vertex.Pool, vstyle VertexStyle, mstyle MeshStyle) error {
	nsides := pr.NumSides()
	if nsides > 3 && mstyle != MeshNoChange {
		s0, _ := pr.Side(0)
		s1, _ := pr.Side(1)
		v := [3]int{
			convertVNum(pool, s0, vtotal, vobject, vstyle),
			convertVNum(pool, s1, vtotal, vobject, vstyle),
			0,
		}

		for s := 2; s < nsides; s++ {
			var sindex int
			if mstyle == MeshTriangleFan {
				sindex = s
			} else {
				if s%2 == 1 {
					sindex = nsides - (s-1)/2
				} else {
					sindex = 1 + s/2
				}
			}

			sv, _ := pr.Side(sindex)
			vnext := convertVNum(pool, sv, vtotal, vobject, vstyle)
			if mstyle == MeshTriangleFan || s%2 == 0 {
				v[2] = vnext
			} else {
				v[0] = vnext
			}

			if _, err := fmt.Fprintf(w, "f %d %d %d\n", v[0], v[1], v[2]); err != nil {
				return err
			}

			if mstyle == MeshTriangleFan || s%2 == 1 {
				v[1] = v[2]
			} else {
				v[1] = v[0]
			}
		}
		return nil
	}

	var kind string
	switch nsides {
	case 1:
		kind = "p"
	case 2:
		kind = "l"
	default:
		kind = "f"
	}
	if _, err := fmt.Fprint(w, kind); err != nil {
		return err
	}
	for s := 0; s < nsides; s++ {
		sv, _ := pr.Side(s)
		if _, err := fmt.Fprintf(w, " %d", convertVNum(pool, sv, vtotal, vobject, vstyle)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\n")
	return err
}

// WritePrimitives writes every primitive in groups, in order, as OBJ
// face/line/point records, switching "usemtl" whenever the resolved
// colour changes. objectName labels each group's "g" line.
func WritePrimitives(w io.Writer, objectName string, vtotal, vobject int, pool *vertex.Pool, groups []*group.Group, getColour GetColour, getMaterial GetMaterial, vstyle VertexStyle, mstyle MeshStyle) error {
	lastColour := -1
	for g, grp := range groups {
		n := grp.NumPrimitives()
		if n == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n# %d primitives\n", n); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "g %s %s_%d\n", objectName, objectName, g); err != nil {
			return err
		}

		for p := 0; p < n; p++ {
			pr := grp.Primitive(p)
			colour := pr.Colour
			if getColour != nil {
				colour = getColour(pr)
			}

			if colour != lastColour {
				material := fmt.Sprintf("colour_%d", colour)
				if getMaterial != nil {
					material = getMaterial(colour)
				}
				if _, err := fmt.Fprintf(w, "usemtl %s\n", material); err != nil {
					return err
				}
				lastColour = colour
			}

			if err := writePrimitive(w, pr, vtotal, vobject, pool, vstyle, mstyle); err != nil {
				return err
			}
		}
	}
	return nil
}

// Write emits m as a complete OBJ file under the given object name.
func Write(w io.Writer, objectName string, m *model.Model, vstyle VertexStyle, mstyle MeshStyle, getColour GetColour, getMaterial GetMaterial) error {
	vobject := 0
	for v := 0; v < m.Pool.NumVertices(); v++ {
		if m.Pool.IsUsed(v) {
			vobject++
		}
	}
	if err := WriteVertices(w, &m.Pool, vobject); err != nil {
		return err
	}
	return WritePrimitives(w, objectName, 0, vobject, &m.Pool, m.Groups, getColour, getMaterial, vstyle, mstyle)
}
