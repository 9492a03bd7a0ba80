// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package objio

import (
	"strings"
	"testing"

	"github.com/galvanized-logic/polyclip/model"
	"github.com/galvanized-logic/polyclip/primitive"
	"github.com/galvanized-logic/polyclip/vector"
)

func squareModel() *model.Model {
	m := model.New()
	m.Pool.Add(vector.V3{0, 0, 0})
	m.Pool.Add(vector.V3{1, 0, 0})
	m.Pool.Add(vector.V3{1, 1, 0})
	m.Pool.Add(vector.V3{0, 1, 0})
	g := m.AddGroup()
	pr := primitive.Primitive{Colour: 3}
	for i := 0; i < 4; i++ {
		pr.AddSide(i, primitive.MaxSides)
	}
	g.Add(pr)
	m.Finalize(false)
	return m
}

func TestWriteProducesVerticesAndFace(t *testing.T) {
	m := squareModel()
	var sb strings.Builder
	if err := Write(&sb, "obj", m, VertexPositive, MeshNoChange, nil, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := sb.String()
	if strings.Count(out, "v ") != 4 {
		t.Errorf("expected 4 vertex lines, got:\n%s", out)
	}
	if !strings.Contains(out, "f 1 2 3 4") {
		t.Errorf("expected a single quad face line, got:\n%s", out)
	}
	if !strings.Contains(out, "usemtl colour_3") {
		t.Errorf("expected default material naming from colour, got:\n%s", out)
	}
}

func TestWriteTriangleFanSplitsQuad(t *testing.T) {
	m := squareModel()
	var sb strings.Builder
	if err := Write(&sb, "obj", m, VertexPositive, MeshTriangleFan, nil, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := sb.String()
	if strings.Count(out, "f ") != 2 {
		t.Errorf("a fan-triangulated quad should emit 2 triangles, got:\n%s", out)
	}
	if !strings.Contains(out, "f 1 2 3") || !strings.Contains(out, "f 1 3 4") {
		t.Errorf("fan triangles should share vertex 1, got:\n%s", out)
	}
}

func TestWriteNegativeVertexStyle(t *testing.T) {
	m := squareModel()
	var sb strings.Builder
	if err := Write(&sb, "obj", m, VertexNegative, MeshNoChange, nil, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(sb.String(), "f -4 -3 -2 -1") {
		t.Errorf("negative vertex style should count back from the end, got:\n%s", sb.String())
	}
}

func TestWriteGetColourOverride(t *testing.T) {
	m := squareModel()
	var sb strings.Builder
	getColour := func(pr *primitive.Primitive) int { return 99 }
	getMaterial := func(colour int) string { return "override" }
	if err := Write(&sb, "obj", m, VertexPositive, MeshNoChange, getColour, getMaterial); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(sb.String(), "usemtl override") {
		t.Errorf("expected the colour/material callbacks to be honoured, got:\n%s", sb.String())
	}
}
