// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package scenecfg loads compact YAML scene fixtures into a model.Model,
// for tests and the CLI demo that would otherwise need hand-written OBJ
// text for every case. It mirrors the way the teacher engine's shader
// stage config is loaded from YAML.
package scenecfg

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/galvanized-logic/polyclip/model"
	"github.com/galvanized-logic/polyclip/primitive"
	"github.com/galvanized-logic/polyclip/vector"
)

// sceneFile is the on-disk YAML shape.
type sceneFile struct {
	Vertices [][3]float64 `yaml:"vertices"`
	Groups   []groupSpec  `yaml:"groups"`
	Order    []int        `yaml:"order"`
}

type groupSpec struct {
	Primitives []primitiveSpec `yaml:"primitives"`
}

type primitiveSpec struct {
	Colour int   `yaml:"colour"`
	ID     int   `yaml:"id"`
	Sides  []int `yaml:"sides"`
}

// Load parses a YAML scene description from r into a Model: a flat
// vertex list shared by every group, a list of groups each holding a
// list of primitives (colour, id, and vertex-index sides), and the plot
// order groups should be clipped in. An absent "order" defaults to
// group declaration order.
func Load(r io.Reader) (*model.Model, error) {
	var sf sceneFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("scenecfg: %w", err)
	}

	m := model.New()
	for _, v := range sf.Vertices {
		m.Pool.Add(vector.V3{v[0], v[1], v[2]})
	}

	for _, gs := range sf.Groups {
		g := m.AddGroup()
		for _, ps := range gs.Primitives {
			var pr primitive.Primitive
			pr.Colour = ps.Colour
			pr.ID = ps.ID
			for _, s := range ps.Sides {
				if !pr.AddSide(s, primitive.MaxSides) {
					return nil, fmt.Errorf("scenecfg: primitive %d has too many sides", ps.ID)
				}
			}
			g.Add(pr)
		}
	}

	if len(sf.Order) > 0 {
		m.Order = sf.Order
	}
	return m, nil
}
