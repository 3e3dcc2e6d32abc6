// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio writes generated meshes to files: Wavefront OBJ
// geometry and YAML summaries.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/math32"
)

// OBJOptions are the options for [WriteOBJ].
type OBJOptions struct {

	// Name is written as the object name, if non-empty.
	Name string

	// Colors are optional per-vertex colors, written after the
	// position as r g b. Must have one color per vertex if set.
	Colors []math32.Vector4

	// RightHanded converts to a right-handed coordinate system
	// by negating z and reversing the triangle winding.
	RightHanded bool
}

// WriteOBJ writes md to w in Wavefront OBJ format. Texture v is
// flipped, as OBJ puts the origin at the bottom left.
func WriteOBJ(w io.Writer, md *geogen.MeshData, opts *OBJOptions) error {
	if opts == nil {
		opts = &OBJOptions{}
	}
	if err := md.Validate(); err != nil {
		return err
	}
	if opts.Colors != nil && len(opts.Colors) != len(md.Vertices) {
		return errors.Errorf("meshio: %d colors for %d vertices", len(opts.Colors), len(md.Vertices))
	}
	z := func(v float32) float32 {
		if opts.RightHanded {
			return 0 - v // +0, not -0
		}
		return v
	}
	bw := bufio.NewWriter(w)
	if opts.Name != "" {
		fmt.Fprintf(bw, "o %s\n", opts.Name)
	}
	for i := range md.Vertices {
		p := md.Vertices[i].Position
		if opts.Colors != nil {
			c := opts.Colors[i]
			fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", p.X, p.Y, z(p.Z), c.X, c.Y, c.Z)
		} else {
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, z(p.Z))
		}
	}
	for i := range md.Vertices {
		tc := md.Vertices[i].TexCoord
		fmt.Fprintf(bw, "vt %g %g\n", tc.X, 1-tc.Y)
	}
	for i := range md.Vertices {
		n := md.Vertices[i].Normal
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, z(n.Z))
	}
	for t := 0; t < md.NumTriangles(); t++ {
		a, b, c := md.Indices[3*t]+1, md.Indices[3*t+1]+1, md.Indices[3*t+2]+1
		if opts.RightHanded {
			b, c = c, b
		}
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return errors.Wrap(bw.Flush())
}

// SaveOBJ writes md to the given file in Wavefront OBJ format.
func SaveOBJ(filename string, md *geogen.MeshData, opts *OBJOptions) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	err = WriteOBJ(f, md, opts)
	if cerr := f.Close(); err == nil {
		err = errors.Wrap(cerr)
	}
	if err == nil {
		slog.Debug("meshio: saved obj", "file", filename, "vertices", len(md.Vertices), "triangles", md.NumTriangles())
	}
	return err
}
