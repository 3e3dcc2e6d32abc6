// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geogen

import (
	"log/slog"

	"github.com/Imukata-aH/DirectX11Practice/math32"
)

// boxFaces lists the outward normal and U tangent of each box face,
// starting with -Z as typically the front.
var boxFaces = [6][2]math32.Vector3{
	{math32.Vec3(0, 0, -1), math32.Vec3(1, 0, 0)},  // nz
	{math32.Vec3(0, 0, 1), math32.Vec3(-1, 0, 0)},  // pz
	{math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0)},   // py
	{math32.Vec3(0, -1, 0), math32.Vec3(-1, 0, 0)}, // ny
	{math32.Vec3(-1, 0, 0), math32.Vec3(0, 0, -1)}, // nx
	{math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1)},   // px
}

// CreateBox returns an axis aligned box centered at the origin with
// the given extents along X, Y and Z. Each face has its own 4 vertices
// so that the normals are flat: 24 vertices and 36 indices in all.
func CreateBox(width, height, depth float32) (*MeshData, error) {
	c := checker{shape: Box}
	c.positive("width", width)
	c.positive("height", height)
	c.positive("depth", depth)
	if c.err != nil {
		return nil, c.err
	}

	hSz := math32.Vec3(width, height, depth).MulScalar(0.5)
	md := newMeshData(24, 36)
	for _, f := range boxFaces {
		setBoxFace(md, f[0], f[1], hSz)
	}
	slog.Debug("geogen: created box", "vertices", len(md.Vertices), "indices", len(md.Indices))
	return md, nil
}

// setBoxFace appends the 4 vertices and 2 triangles of the face with
// outward normal n and tangent t, for a box with half size hSz.
// The V axis runs along n x t.
func setBoxFace(md *MeshData, n, t, hSz math32.Vector3) {
	d := n.Cross(t)
	ctr := n.Mul(hSz)
	hu := t.Abs().Dot(hSz)
	hv := d.Abs().Dot(hSz)
	tu := t.MulScalar(hu)
	dv := d.MulScalar(hv)

	base := len(md.Vertices)
	md.addVertex(NewVertex(ctr.Sub(tu).Add(dv), n, t, 0, 1))
	md.addVertex(NewVertex(ctr.Sub(tu).Sub(dv), n, t, 0, 0))
	md.addVertex(NewVertex(ctr.Add(tu).Sub(dv), n, t, 1, 0))
	md.addVertex(NewVertex(ctr.Add(tu).Add(dv), n, t, 1, 1))
	md.addTriangle(base, base+1, base+2)
	md.addTriangle(base, base+2, base+3)
}
