// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package objio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Material is one "newmtl" block of a Wavefront MTL file: the diffuse
// colour (Kd) is what the clipping demo cares about; the rest is kept
// for round-tripping.
type Material struct {
	Name             string
	Ambient, Diffuse [3]float64
	Specular         [3]float64
	Dissolve         float64
	SpecularExp      float64
}

// ReadMTL parses a Wavefront MTL stream into an ordered list of
// materials, in file order.
func ReadMTL(r io.Reader) ([]Material, error) {
	var mats []Material
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "newmtl":
			mats = append(mats, Material{Name: strings.Join(fields[1:], " "), Dissolve: 1})

		case "Ka":
			if len(mats) == 0 {
				continue
			}
			fmt.Sscanf(line, "Ka %f %f %f", &mats[len(mats)-1].Ambient[0], &mats[len(mats)-1].Ambient[1], &mats[len(mats)-1].Ambient[2])

		case "Kd":
			if len(mats) == 0 {
				continue
			}
			fmt.Sscanf(line, "Kd %f %f %f", &mats[len(mats)-1].Diffuse[0], &mats[len(mats)-1].Diffuse[1], &mats[len(mats)-1].Diffuse[2])

		case "Ks":
			if len(mats) == 0 {
				continue
			}
			fmt.Sscanf(line, "Ks %f %f %f", &mats[len(mats)-1].Specular[0], &mats[len(mats)-1].Specular[1], &mats[len(mats)-1].Specular[2])

		case "d":
			if len(mats) == 0 {
				continue
			}
			fmt.Sscanf(line, "d %f", &mats[len(mats)-1].Dissolve)

		case "Ns":
			if len(mats) == 0 {
				continue
			}
			fmt.Sscanf(line, "Ns %f", &mats[len(mats)-1].SpecularExp)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return mats, nil
}
