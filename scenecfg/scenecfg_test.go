// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package scenecfg

import (
	"strconv"
	"strings"
	"testing"
)

func TestLoadBuildsModelFromYAML(t *testing.T) {
	src := `
vertices:
  - [0, 0, 0]
  - [1, 0, 0]
  - [1, 1, 0]
  - [0, 1, 0]
groups:
  - primitives:
      - colour: 2
        id: 0
        sides: [0, 1, 2, 3]
order: [0]
`
	m, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Pool.NumVertices() != 4 {
		t.Errorf("NumVertices = %d, want 4", m.Pool.NumVertices())
	}
	if len(m.Groups) != 1 || m.Groups[0].NumPrimitives() != 1 {
		t.Fatalf("expected 1 group with 1 primitive")
	}
	pr := m.Groups[0].Primitive(0)
	if pr.Colour != 2 || pr.NumSides() != 4 {
		t.Errorf("primitive parsed wrong: colour=%d nsides=%d", pr.Colour, pr.NumSides())
	}
	if len(m.Order) != 1 || m.Order[0] != 0 {
		t.Errorf("Order = %v, want [0]", m.Order)
	}
}

func TestLoadDefaultOrderIsDeclarationOrder(t *testing.T) {
	src := `
vertices:
  - [0, 0, 0]
groups:
  - primitives: []
  - primitives: []
`
	m, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Order) != 2 || m.Order[0] != 0 || m.Order[1] != 1 {
		t.Errorf("Order = %v, want [0 1] (declaration order)", m.Order)
	}
}

func TestLoadRejectsTooManySides(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("vertices:\n")
	sides := make([]int, 20)
	for i := range sides {
		sb.WriteString("  - [0, 0, 0]\n")
		sides[i] = i
	}
	sb.WriteString("groups:\n  - primitives:\n      - colour: 0\n        id: 0\n        sides: [")
	for i, s := range sides {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(s))
	}
	sb.WriteString("]\n")

	if _, err := Load(strings.NewReader(sb.String())); err == nil {
		t.Errorf("expected an error when a primitive exceeds MaxSides")
	}
}
