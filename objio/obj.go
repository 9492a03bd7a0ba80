// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package objio reads and writes Wavefront OBJ/MTL text files. It is an
// external collaborator of the clipping core, not part of it: the core
// only ever sees a model.Model plus the Colour lookup/emit hooks this
// package calls out to.
package objio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/galvanized-logic/polyclip/model"
	"github.com/galvanized-logic/polyclip/primitive"
	"github.com/galvanized-logic/polyclip/vector"
)

// Read parses an OBJ stream into a Model. Each "g" line starts a new
// group; geometry before the first "g" line goes into an implicit first
// group. Only vertex positions and face/line/point records are read —
// normals, texture coordinates, and material references are ignored,
// since clipping only operates on polygon shape.
func Read(r io.Reader) (*model.Model, error) {
	m := model.New()
	cur := m.AddGroup()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			var x, y, z float64
			if _, err := fmt.Sscanf(line, "v %f %f %f", &x, &y, &z); err != nil {
				return nil, fmt.Errorf("objio: line %d: %w", lineNo, err)
			}
			m.Pool.Add(vector.V3{x, y, z})

		case "g":
			cur = m.AddGroup()

		case "p", "l", "f":
			var sides []int
			for _, field := range fields[1:] {
				idx, err := parseFaceIndex(field, m.Pool.NumVertices())
				if err != nil {
					return nil, fmt.Errorf("objio: line %d: %w", lineNo, err)
				}
				sides = append(sides, idx)
			}
			cur.Add(newPrimitive(sides))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func newPrimitive(sides []int) primitive.Primitive {
	var pr primitive.Primitive
	for _, s := range sides {
		pr.AddSide(s, primitive.MaxSides)
	}
	return pr
}

// parseFaceIndex parses one OBJ face-record token ("v", "v/t", "v//n",
// or "v/t/n") and returns the zero-based vertex index, resolving
// negative (relative-to-end) indices against nvertices.
func parseFaceIndex(field string, nvertices int) (int, error) {
	vpart := strings.SplitN(field, "/", 2)[0]
	v, err := strconv.Atoi(vpart)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q: %w", field, err)
	}
	if v < 0 {
		return nvertices + v, nil
	}
	return v - 1, nil
}

