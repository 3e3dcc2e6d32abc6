// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geogen

import (
	"log/slog"

	"github.com/Imukata-aH/DirectX11Practice/math32"
)

// MaxSubdivisions is the largest geosphere subdivision level;
// higher requests are clamped to it.
const MaxSubdivisions = 6

// icosahedron vertex coordinates on the unit sphere: X and Z are
// 1 / sqrt(1 + phi^2) and phi / sqrt(1 + phi^2) for the golden ratio phi.
const (
	icoX = 0.525731
	icoZ = 0.850651
)

var icoVertices = [12]math32.Vector3{
	math32.Vec3(-icoX, 0, icoZ), math32.Vec3(icoX, 0, icoZ),
	math32.Vec3(-icoX, 0, -icoZ), math32.Vec3(icoX, 0, -icoZ),
	math32.Vec3(0, icoZ, icoX), math32.Vec3(0, icoZ, -icoX),
	math32.Vec3(0, -icoZ, icoX), math32.Vec3(0, -icoZ, -icoX),
	math32.Vec3(icoZ, icoX, 0), math32.Vec3(-icoZ, icoX, 0),
	math32.Vec3(icoZ, -icoX, 0), math32.Vec3(-icoZ, -icoX, 0),
}

var icoIndices = [60]uint32{
	1, 4, 0, 4, 9, 0, 4, 5, 9, 8, 5, 4, 1, 8, 4,
	1, 10, 8, 10, 3, 8, 8, 3, 5, 3, 2, 5, 3, 7, 2,
	3, 10, 7, 10, 6, 7, 6, 11, 7, 6, 0, 11, 6, 1, 0,
	10, 1, 6, 11, 0, 9, 2, 11, 9, 5, 2, 9, 11, 2, 7,
}

// edge is an undirected edge key, with a < b.
type edge struct {
	a, b uint32
}

func makeEdge(a, b uint32) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

// icoMesh is the unit sphere approximation under construction.
type icoMesh struct {
	points  []math32.Vector3
	indices []uint32
}

// midpoint returns the index of the unit sphere point halfway along
// edge (a, b), adding it on first use so that both triangles of the
// edge share it.
func (im *icoMesh) midpoint(cache map[edge]uint32, a, b uint32) uint32 {
	e := makeEdge(a, b)
	if i, ok := cache[e]; ok {
		return i
	}
	m := im.points[a].Add(im.points[b]).Normal()
	i := uint32(len(im.points))
	im.points = append(im.points, m)
	cache[e] = i
	return i
}

// subdivide splits every triangle in 4, keeping the winding:
//
//	     v1
//	     *
//	    / \
//	m0 *---* m1
//	  / \ / \
//	 *---*---*
//	v0   m2   v2
func (im *icoMesh) subdivide() {
	nTri := len(im.indices) / 3
	cache := make(map[edge]uint32, nTri*3/2)
	indices := make([]uint32, 0, len(im.indices)*4)
	for t := 0; t < nTri; t++ {
		v0, v1, v2 := im.indices[3*t], im.indices[3*t+1], im.indices[3*t+2]
		m0 := im.midpoint(cache, v0, v1)
		m1 := im.midpoint(cache, v1, v2)
		m2 := im.midpoint(cache, v0, v2)
		indices = append(indices,
			v0, m0, m2,
			m0, m1, m2,
			m2, m1, v2,
			m0, v1, m1)
	}
	im.indices = indices
}

// CreateGeosphere returns a sphere of the given radius built by
// subdividing an icosahedron subdivisions times, which spreads the
// triangles more evenly than [CreateSphere]. Level k has 10*4^k + 2
// vertices and 20*4^k triangles. Levels above [MaxSubdivisions]
// are clamped.
//
// Texture coordinates come from the spherical angles of each vertex,
// with U = theta / 2pi measured from +X. Unlike [CreateSphere] there are
// no seam duplicates, so triangles crossing the +X seam interpolate U
// back from near 1 to 0 and a wrapped texture shows a thin smeared strip
// there.
func CreateGeosphere(radius float32, subdivisions int) (*MeshData, error) {
	c := checker{shape: Geosphere}
	c.positive("radius", radius)
	c.atLeast("subdivisions", subdivisions, 0)
	if c.err != nil {
		return nil, c.err
	}
	subdivisions = min(subdivisions, MaxSubdivisions)

	im := &icoMesh{
		points:  append([]math32.Vector3{}, icoVertices[:]...),
		indices: append([]uint32{}, icoIndices[:]...),
	}
	for i := 0; i < subdivisions; i++ {
		im.subdivide()
	}

	md := &MeshData{
		Vertices: make([]Vertex, 0, len(im.points)),
		Indices:  im.indices,
	}
	for _, n := range im.points {
		n = n.Normal()
		pos := n.MulScalar(radius)
		theta := math32.Atan2(n.Z, n.X)
		if theta < 0 {
			theta += 2 * math32.Pi
		}
		phi := math32.Acos(math32.Clamp(n.Y, -1, 1))
		// d(pos)/d(theta) is (-z, 0, x), which vanishes at the poles
		tan := math32.Vec3(-n.Z, 0, n.X)
		if tan.LengthSquared() < 1e-12 {
			tan = math32.Vec3(1, 0, 0)
		}
		md.addVertex(NewVertex(pos, n, tan.Normal(), theta/(2*math32.Pi), phi/math32.Pi))
	}

	slog.Debug("geogen: created geosphere", "subdivisions", subdivisions, "vertices", len(md.Vertices), "indices", len(md.Indices))
	return md, nil
}
