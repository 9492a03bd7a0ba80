// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Command polyclip reads a Wavefront OBJ file (optionally paired with a
// YAML scene fixture giving an explicit plot order), clips away
// occluded polygon area, and writes the result back out as OBJ.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/galvanized-logic/polyclip/clip"
	"github.com/galvanized-logic/polyclip/objio"
	"github.com/galvanized-logic/polyclip/scenecfg"
)

func main() {
	var (
		in      = flag.String("in", "", "input OBJ file")
		out     = flag.String("out", "", "output OBJ file")
		order   = flag.String("order", "", "optional YAML scene fixture supplying plot order")
		verbose = flag.Bool("v", false, "verbose clip progress")
		name    = flag.String("name", "polyclip", "object name for emitted OBJ records")
	)
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: polyclip -in mesh.obj -out clipped.obj [-order scene.yaml]")
		os.Exit(2)
	}

	if err := run(*in, *out, *order, *name, *verbose); err != nil {
		log.Fatalf("polyclip: %v", err)
	}
}

func run(inPath, outPath, orderPath, objectName string, verbose bool) error {
	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	m, err := objio.Read(f)
	f.Close()
	if err != nil {
		return err
	}

	if orderPath != "" {
		of, err := os.Open(orderPath)
		if err != nil {
			return err
		}
		order, err := scenecfg.Load(of)
		of.Close()
		if err != nil {
			return err
		}
		m.Order = order.Order
	}

	if verbose {
		for _, bad := range m.Validate() {
			log.Printf("polyclip: group %d primitive %d is not planar (side %d)", bad.GroupIndex, bad.PrimitiveIndex, bad.Side)
		}
	}

	var opts []clip.Option
	if verbose {
		opts = append(opts, clip.WithVerbose())
	}
	c := clip.New(opts...)
	if err := m.Clip(c); err != nil {
		return err
	}
	m.Finalize(verbose)

	w, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer w.Close()

	return objio.Write(w, objectName, m, objio.VertexPositive, objio.MeshNoChange, nil, nil)
}
