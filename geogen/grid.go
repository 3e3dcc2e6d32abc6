// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geogen

import (
	"log/slog"

	"github.com/Imukata-aH/DirectX11Practice/math32"
)

// HeightFunc returns the surface height at (x, z) for [CreateGridHeight].
type HeightFunc func(x, z float32) float32

// CreateGrid returns a flat grid in the XZ plane centered at the origin,
// width along X and depth along Z, with rows vertices along Z and cols
// vertices along X. Row 0 is at z = depth/2. Texture coordinates
// span the unit square once across the whole grid.
func CreateGrid(width, depth float32, rows, cols int) (*MeshData, error) {
	return createGrid(width, depth, rows, cols, nil)
}

// CreateGridHeight is like [CreateGrid], with each vertex displaced to
// y = fn(x, z). Normals and tangents follow the surface, using central
// differences of fn.
func CreateGridHeight(width, depth float32, rows, cols int, fn HeightFunc) (*MeshData, error) {
	if fn == nil {
		return nil, &ParamError{Shape: Grid, Param: "height func", Value: nil}
	}
	return createGrid(width, depth, rows, cols, fn)
}

func createGrid(width, depth float32, rows, cols int, fn HeightFunc) (*MeshData, error) {
	c := checker{shape: Grid}
	c.positive("width", width)
	c.positive("depth", depth)
	c.atLeast("rows", rows, 2)
	c.atLeast("cols", cols, 2)
	if c.err != nil {
		return nil, c.err
	}

	md := newMeshData(rows*cols, 6*(rows-1)*(cols-1))
	dx := width / float32(cols-1)
	dz := depth / float32(rows-1)
	du := 1 / float32(cols-1)
	dv := 1 / float32(rows-1)
	hx, hz := 0.5*dx, 0.5*dz

	for i := 0; i < rows; i++ {
		z := 0.5*depth - float32(i)*dz
		for j := 0; j < cols; j++ {
			x := -0.5*width + float32(j)*dx
			pos := math32.Vec3(x, 0, z)
			norm := math32.Vec3(0, 1, 0)
			tan := math32.Vec3(1, 0, 0)
			if fn != nil {
				pos.Y = fn(x, z)
				dydx := (fn(x+hx, z) - fn(x-hx, z)) / dx
				dydz := (fn(x, z+hz) - fn(x, z-hz)) / dz
				norm = math32.Vec3(-dydx, 1, -dydz).Normal()
				tan = math32.Vec3(1, dydx, 0).Normal()
			}
			md.addVertex(NewVertex(pos, norm, tan, float32(j)*du, float32(i)*dv))
		}
	}

	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			r0 := i*cols + j
			r1 := (i+1)*cols + j
			md.addTriangle(r0, r0+1, r1)
			md.addTriangle(r1, r0+1, r1+1)
		}
	}

	slog.Debug("geogen: created grid", "vertices", len(md.Vertices), "indices", len(md.Indices))
	return md, nil
}
