// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geogen

import (
	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/jinzhu/copier"
)

// MeshData is an indexed triangle list. Every consecutive triple of
// Indices is one triangle (a, b, c) whose face normal (b-a) x (c-a)
// points out of the surface.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// newMeshData returns a MeshData with room for the given number
// of vertices and indices.
func newMeshData(nVtx, nIdx int) *MeshData {
	return &MeshData{
		Vertices: make([]Vertex, 0, nVtx),
		Indices:  make([]uint32, 0, nIdx),
	}
}

// N returns the number of vertices and indices.
func (md *MeshData) N() (nVtx, nIdx int) {
	return len(md.Vertices), len(md.Indices)
}

// NumTriangles returns the number of triangles.
func (md *MeshData) NumTriangles() int {
	return len(md.Indices) / 3
}

// Triangle returns the positions of triangle i.
func (md *MeshData) Triangle(i int) math32.Triangle {
	return math32.NewTriangle(
		md.Vertices[md.Indices[3*i]].Position,
		md.Vertices[md.Indices[3*i+1]].Position,
		md.Vertices[md.Indices[3*i+2]].Position)
}

func (md *MeshData) addVertex(v Vertex) {
	md.Vertices = append(md.Vertices, v)
}

func (md *MeshData) addTriangle(a, b, c int) {
	md.Indices = append(md.Indices, uint32(a), uint32(b), uint32(c))
}

// Validate checks that the index count is a multiple of 3 and that
// every index refers to an existing vertex.
func (md *MeshData) Validate() error {
	if len(md.Indices)%3 != 0 {
		return errors.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidMesh, len(md.Indices))
	}
	nv := uint32(len(md.Vertices))
	for i, idx := range md.Indices {
		if idx >= nv {
			return errors.Errorf("%w: index %d at %d is out of range for %d vertices", ErrInvalidMesh, idx, i, nv)
		}
	}
	return nil
}

// BBox returns the bounding box of the vertex positions.
// It is empty for a mesh with no vertices.
func (md *MeshData) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for i := range md.Vertices {
		bb.ExpandByPoint(md.Vertices[i].Position)
	}
	return bb
}

// Append adds the vertices and indices of other to the end of md,
// offsetting the appended indices by the current vertex count.
func (md *MeshData) Append(other *MeshData) {
	base := uint32(len(md.Vertices))
	md.Vertices = append(md.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		md.Indices = append(md.Indices, idx+base)
	}
}

// FlipWinding swaps the second and third index of every triangle,
// for consumers that treat counter-clockwise triangles as front facing.
// Normals are left unchanged.
func (md *MeshData) FlipWinding() {
	for i := 0; i+2 < len(md.Indices); i += 3 {
		md.Indices[i+1], md.Indices[i+2] = md.Indices[i+2], md.Indices[i+1]
	}
}

// Clone returns a deep copy of the mesh.
func (md *MeshData) Clone() *MeshData {
	cp := &MeshData{}
	errors.Must(copier.CopyWithOption(cp, md, copier.Option{DeepCopy: true}))
	return cp
}

// Arrays returns the positions, normals, texture coordinates and
// indices as flat arrays, 3, 3, 2 and 1 values per element.
func (md *MeshData) Arrays() (pos, norm, tex math32.ArrayF32, idx math32.ArrayU32) {
	n := len(md.Vertices)
	pos = math32.NewArrayF32(0, n*3)
	norm = math32.NewArrayF32(0, n*3)
	tex = math32.NewArrayF32(0, n*2)
	for i := range md.Vertices {
		v := &md.Vertices[i]
		pos.AppendVector3(v.Position)
		norm.AppendVector3(v.Normal)
		tex.AppendVector2(v.TexCoord)
	}
	idx = math32.NewArrayU32(0, len(md.Indices))
	idx.Append(md.Indices...)
	return
}
