// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geogen

import (
	"log/slog"

	"github.com/Imukata-aH/DirectX11Practice/math32"
)

// CreateSphere returns a UV sphere of the given radius centered at the
// origin, made of stacks latitude bands from the north pole (+Y) to the
// south pole, each divided into slices around the Y axis.
//
// The poles are single vertices. Each of the stacks-1 inner rings has
// slices+1 vertices, the first and last sharing a position so that the
// texture U coordinate can run from 0 to 1 across the seam.
func CreateSphere(radius float32, slices, stacks int) (*MeshData, error) {
	c := checker{shape: Sphere}
	c.positive("radius", radius)
	c.atLeast("slices", slices, 3)
	c.atLeast("stacks", stacks, 2)
	if c.err != nil {
		return nil, c.err
	}

	rc := slices + 1
	nVtx := 2 + (stacks-1)*rc
	nIdx := 6*slices + 6*slices*(stacks-2)
	md := newMeshData(nVtx, nIdx)

	md.addVertex(NewVertex(math32.Vec3(0, radius, 0), math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0), 0, 0))

	phiStep := math32.Pi / float32(stacks)
	thetaStep := 2 * math32.Pi / float32(slices)
	for i := 1; i < stacks; i++ {
		phi := float32(i) * phiStep
		sp, cp := math32.Sin(phi), math32.Cos(phi)
		for j := 0; j <= slices; j++ {
			theta := float32(j) * thetaStep
			st, ct := math32.Sin(theta), math32.Cos(theta)
			pos := math32.Vec3(radius*sp*ct, radius*cp, radius*sp*st)
			// d(pos)/d(theta), normalized
			tan := math32.Vec3(-st, 0, ct)
			md.addVertex(NewVertex(pos, pos.Normal(), tan, theta/(2*math32.Pi), phi/math32.Pi))
		}
	}

	md.addVertex(NewVertex(math32.Vec3(0, -radius, 0), math32.Vec3(0, -1, 0), math32.Vec3(1, 0, 0), 0, 1))

	// north pole fan
	for j := 1; j <= slices; j++ {
		md.addTriangle(0, j+1, j)
	}

	// bands between inner rings, offset past the north pole
	base := 1
	for i := 0; i < stacks-2; i++ {
		for j := 0; j < slices; j++ {
			r0 := base + i*rc + j
			r1 := base + (i+1)*rc + j
			md.addTriangle(r0, r0+1, r1)
			md.addTriangle(r1, r0+1, r1+1)
		}
	}

	// south pole fan over the last ring
	south := len(md.Vertices) - 1
	base = south - rc
	for j := 0; j < slices; j++ {
		md.addTriangle(south, base+j, base+j+1)
	}

	slog.Debug("geogen: created sphere", "vertices", len(md.Vertices), "indices", len(md.Indices))
	return md, nil
}
