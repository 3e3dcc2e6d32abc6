// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geogen

import (
	"log/slog"

	"github.com/Imukata-aH/DirectX11Practice/math32"
)

// CreateCylinder returns a cylinder centered at the origin with its
// axis along Y. The radius is interpolated linearly from bottomRadius at
// y = -height/2 to topRadius at y = height/2, so unequal radii give a
// frustum. The side has stacks+1 rings of slices+1 vertices. Both ends
// get a flat cap of the end's radius with its own vertices.
func CreateCylinder(bottomRadius, topRadius, height float32, slices, stacks int) (*MeshData, error) {
	c := checker{shape: Cylinder}
	c.positive("bottomRadius", bottomRadius)
	c.positive("topRadius", topRadius)
	c.positive("height", height)
	c.atLeast("slices", slices, 3)
	c.atLeast("stacks", stacks, 2)
	if c.err != nil {
		return nil, c.err
	}

	rc := slices + 1
	md := newMeshData((stacks+1)*rc+2*(rc+1), 6*slices*stacks+6*slices)

	stackHeight := height / float32(stacks)
	radiusStep := (topRadius - bottomRadius) / float32(stacks)
	dr := bottomRadius - topRadius
	thetaStep := 2 * math32.Pi / float32(slices)

	for i := 0; i <= stacks; i++ {
		y := -0.5*height + float32(i)*stackHeight
		r := bottomRadius + float32(i)*radiusStep
		for j := 0; j <= slices; j++ {
			theta := float32(j) * thetaStep
			st, ct := math32.Sin(theta), math32.Cos(theta)
			tan := math32.Vec3(-st, 0, ct)
			bitan := math32.Vec3(dr*ct, -height, dr*st)
			norm := tan.Cross(bitan).Normal()
			md.addVertex(NewVertex(math32.Vec3(r*ct, y, r*st), norm, tan,
				float32(j)/float32(slices), 1-float32(i)/float32(stacks)))
		}
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			r0 := i*rc + j
			r1 := (i+1)*rc + j
			md.addTriangle(r0, r1, r1+1)
			md.addTriangle(r0, r1+1, r0+1)
		}
	}

	setCylinderCap(md, topRadius, 0.5*height, slices, true)
	setCylinderCap(md, bottomRadius, -0.5*height, slices, false)

	slog.Debug("geogen: created cylinder", "vertices", len(md.Vertices), "indices", len(md.Indices))
	return md, nil
}

// setCylinderCap appends a flat cap fan at height y: slices+1 rim
// vertices followed by the center vertex. The top cap faces +Y and the
// bottom cap -Y. Texture coordinates map the cap disc into the unit square.
func setCylinderCap(md *MeshData, radius, y float32, slices int, top bool) {
	norm := math32.Vec3(0, -1, 0)
	vdir := float32(1)
	if top {
		norm = math32.Vec3(0, 1, 0)
		vdir = -1
	}
	tan := math32.Vec3(1, 0, 0)
	thetaStep := 2 * math32.Pi / float32(slices)
	diam := 2 * radius

	base := len(md.Vertices)
	for j := 0; j <= slices; j++ {
		theta := float32(j) * thetaStep
		x := radius * math32.Cos(theta)
		z := radius * math32.Sin(theta)
		md.addVertex(NewVertex(math32.Vec3(x, y, z), norm, tan, x/diam+0.5, vdir*z/diam+0.5))
	}
	center := len(md.Vertices)
	md.addVertex(NewVertex(math32.Vec3(0, y, 0), norm, tan, 0.5, 0.5))

	for j := 0; j < slices; j++ {
		if top {
			md.addTriangle(center, base+j+1, base+j)
		} else {
			md.addTriangle(center, base+j, base+j+1)
		}
	}
}
