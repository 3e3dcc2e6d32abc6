// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geogen

import "github.com/Imukata-aH/DirectX11Practice/math32"

// Vertex is one generated mesh vertex.
type Vertex struct {

	// Position in model space.
	Position math32.Vector3

	// Normal is the unit outward surface normal.
	Normal math32.Vector3

	// Tangent is the unit surface tangent along increasing U, with the
	// handedness of the (tangent, bitangent, normal) frame in W.
	Tangent math32.Vector4

	// TexCoord is the texture coordinate, with V increasing downwards.
	TexCoord math32.Vector2
}

// NewVertex returns a [Vertex] with a right-handed (W = 1) tangent.
func NewVertex(pos, norm, tan math32.Vector3, u, v float32) Vertex {
	return Vertex{
		Position: pos,
		Normal:   norm,
		Tangent:  math32.Vector4FromVector3(tan, 1),
		TexCoord: math32.Vec2(u, v),
	}
}
