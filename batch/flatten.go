// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Flatten returns a single world space mesh holding every draw of
// the batch, with positions transformed by the draw World matrix and
// normals by its inverse transpose. Draws with a mirroring transform
// have their winding reversed so that triangles stay outward facing.
func (b *Batch) Flatten(draws []Draw) *geogen.MeshData {
	md := &geogen.MeshData{}
	for i := range draws {
		d := &draws[i]
		sm := d.Submesh
		lin := d.World.Mat3()
		nrm := lin.Inv().Transpose()
		mirror := lin.Det() < 0

		base := uint32(len(md.Vertices))
		for _, v := range b.Mesh.Vertices[sm.BaseVertex : sm.BaseVertex+sm.VertexCount] {
			v.Position = TransformPoint(d.World, v.Position)
			v.Normal = transformDir(nrm, v.Normal)
			t := transformDir(lin, v.Tangent.Vector3())
			// keep the tangent in the surface after non-uniform scaling
			t = t.Sub(v.Normal.MulScalar(t.Dot(v.Normal))).Normal()
			v.Tangent = math32.Vector4FromVector3(t, 1)
			md.Vertices = append(md.Vertices, v)
		}
		idx := b.Mesh.Indices[sm.StartIndex : sm.StartIndex+sm.IndexCount]
		for t := 0; t+2 < len(idx); t += 3 {
			i0, i1, i2 := idx[t], idx[t+1], idx[t+2]
			if mirror {
				i1, i2 = i2, i1
			}
			off := base - uint32(sm.BaseVertex)
			md.Indices = append(md.Indices, i0+off, i1+off, i2+off)
		}
	}
	return md
}

func transformDir(m mgl32.Mat3, v math32.Vector3) math32.Vector3 {
	r := m.Mul3x1(mgl32.Vec3{v.X, v.Y, v.Z})
	return math32.Vec3(r.X(), r.Y(), r.Z()).Normal()
}
