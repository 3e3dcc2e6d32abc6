// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lighting

import (
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/math32"
)

// NumDirLights is the number of directional lights in a [Frame].
const NumDirLights = 3

// Frame is the set of lights for one frame, and the eye position.
type Frame struct {
	Dir     [NumDirLights]DirectionalLight `toml:"dir"`
	Enabled [NumDirLights]bool             `toml:"enabled"`

	// Point and Spot are optional.
	Point *PointLight `toml:"point,omitempty"`
	Spot  *SpotLight  `toml:"spot,omitempty"`

	EyePos math32.Vector3 `toml:"eye_pos"`
}

// DefaultFrame returns the three-light rig of the lighting demo:
// a key light, a fill light and a back light, all enabled.
func DefaultFrame() Frame {
	f := Frame{}
	f.Dir[0] = DirectionalLight{
		Ambient:   math32.Vec4(0.2, 0.2, 0.2, 1),
		Diffuse:   math32.Vec4(0.5, 0.5, 0.5, 1),
		Specular:  math32.Vec4(0.5, 0.5, 0.5, 1),
		Direction: math32.Vec3(0.57735, -0.57735, 0.57735),
	}
	f.Dir[1] = DirectionalLight{
		Ambient:   math32.Vec4(0, 0, 0, 1),
		Diffuse:   math32.Vec4(0.2, 0.2, 0.2, 1),
		Specular:  math32.Vec4(0.25, 0.25, 0.25, 1),
		Direction: math32.Vec3(-0.57735, -0.57735, 0.57735),
	}
	f.Dir[2] = DirectionalLight{
		Ambient:   math32.Vec4(0, 0, 0, 1),
		Diffuse:   math32.Vec4(0.2, 0.2, 0.2, 1),
		Specular:  math32.Vec4(0, 0, 0, 1),
		Direction: math32.Vec3(0, -0.707, -0.707),
	}
	f.EnableAll()
	return f
}

// Toggle flips directional light i on or off.
func (f *Frame) Toggle(i int) {
	if i >= 0 && i < NumDirLights {
		f.Enabled[i] = !f.Enabled[i]
	}
}

// EnableAll turns on all directional lights.
func (f *Frame) EnableAll() {
	for i := range f.Enabled {
		f.Enabled[i] = true
	}
}

// NumEnabled returns the number of enabled directional lights.
func (f *Frame) NumEnabled() int {
	n := 0
	for _, e := range f.Enabled {
		if e {
			n++
		}
	}
	return n
}

// Shade returns the lit color of a surface point with the given
// position and normal, summing all enabled lights. Alpha is the
// material diffuse alpha.
func (f *Frame) Shade(mat *Material, pos, normal math32.Vector3) Color {
	normal = normal.Normal()
	toEye := f.EyePos.Sub(pos).Normal()
	var sum Color
	add := func(a, d, s Color) {
		sum.SetAdd(a)
		sum.SetAdd(d)
		sum.SetAdd(s)
	}
	for i := range f.Dir {
		if f.Enabled[i] {
			add(ComputeDirectional(mat, &f.Dir[i], normal, toEye))
		}
	}
	if f.Point != nil {
		add(ComputePoint(mat, f.Point, pos, normal, toEye))
	}
	if f.Spot != nil {
		add(ComputeSpot(mat, f.Spot, pos, normal, toEye))
	}
	sum.W = mat.Diffuse.W
	return sum
}

// Bake returns the lit color of every vertex of md, clamped to [0, 1].
func Bake(md *geogen.MeshData, mat *Material, f *Frame) []Color {
	clrs := make([]Color, len(md.Vertices))
	for i := range md.Vertices {
		v := &md.Vertices[i]
		clrs[i] = f.Shade(mat, v.Position, v.Normal).Clamp(0, 1)
	}
	return clrs
}
