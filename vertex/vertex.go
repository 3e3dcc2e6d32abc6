// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vertex packs generated meshes into the interleaved vertex
// formats consumed by the shaders, and describes their buffer layouts.
package vertex

import (
	"encoding/binary"
	"math"
	"slices"
	"strings"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/gogpu/gputypes"
)

// Format is an interleaved vertex format. Attributes are stored in the
// order named, as little-endian float32 values.
type Format int32

const (
	// PosColor is position (float32x3) and RGBA color (float32x4).
	PosColor Format = iota

	// PosNormal is position and normal (float32x3 each).
	PosNormal

	// PosNormalTex is position, normal and texture coordinate (float32x2).
	PosNormalTex

	// Full is position, normal, tangent (float32x4) and texture coordinate.
	Full

	formatN
)

var formatNames = [formatN]string{"pos-color", "pos-normal", "pos-normal-tex", "full"}

// FormatValues returns all values of the Format enum.
func FormatValues() []Format {
	return []Format{PosColor, PosNormal, PosNormalTex, Full}
}

func (f Format) String() string {
	if f.IsValid() {
		return formatNames[f]
	}
	return "Format(?)"
}

// SetString sets the format from its name, ignoring case.
func (f *Format) SetString(s string) error {
	for i, nm := range formatNames {
		if strings.EqualFold(nm, s) {
			*f = Format(i)
			return nil
		}
	}
	return errors.Errorf("%q is not a valid value for type Format", s)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error { return f.SetString(s) }

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }

// layouts are the buffer layouts of each format, with shader
// locations numbered in attribute order.
var layouts = [formatN]gputypes.VertexBufferLayout{
	PosColor: {
		ArrayStride: 28,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1}, // color
		},
	},
	PosNormal: {
		ArrayStride: 24,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
		},
	},
	PosNormalTex: {
		ArrayStride: 32,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
			{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2}, // texcoord
		},
	},
	Full: {
		ArrayStride: 48,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
			{Format: gputypes.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 2}, // tangent
			{Format: gputypes.VertexFormatFloat32x2, Offset: 40, ShaderLocation: 3}, // texcoord
		},
	},
}

// IsValid returns whether f is one of the defined formats.
func (f Format) IsValid() bool {
	return f >= 0 && f < formatN
}

// Stride returns the size of one vertex in bytes, or 0 for an
// invalid format.
func (f Format) Stride() int {
	if !f.IsValid() {
		return 0
	}
	return int(layouts[f].ArrayStride)
}

// Layout returns the vertex buffer layout of the format.
func (f Format) Layout() gputypes.VertexBufferLayout {
	if !f.IsValid() {
		return gputypes.VertexBufferLayout{}
	}
	l := layouts[f]
	l.Attributes = slices.Clone(l.Attributes)
	return l
}

// ColorFunc returns the color of vertex i, for [PosColor].
type ColorFunc func(i int, v *geogen.Vertex) math32.Vector4

// White is the [ColorFunc] used when none is given.
func White(i int, v *geogen.Vertex) math32.Vector4 {
	return math32.Vec4(1, 1, 1, 1)
}

// Colors returns a [ColorFunc] that reads colors from the given
// per-vertex slice, as returned by lighting.Bake.
func Colors(clrs []math32.Vector4) ColorFunc {
	return func(i int, v *geogen.Vertex) math32.Vector4 {
		return clrs[i]
	}
}

// packer writes float32 values to a byte buffer.
type packer struct {
	buf []byte
	off int
}

func (p *packer) float(v float32) {
	binary.LittleEndian.PutUint32(p.buf[p.off:], math.Float32bits(v))
	p.off += 4
}

func (p *packer) vec2(v math32.Vector2) {
	p.float(v.X)
	p.float(v.Y)
}

func (p *packer) vec3(v math32.Vector3) {
	p.float(v.X)
	p.float(v.Y)
	p.float(v.Z)
}

func (p *packer) vec4(v math32.Vector4) {
	p.float(v.X)
	p.float(v.Y)
	p.float(v.Z)
	p.float(v.W)
}

// Pack copies the attributes of format f from every vertex of md into
// an interleaved vertex buffer. Color is only used by [PosColor]; nil
// means [White].
func Pack(md *geogen.MeshData, f Format, color ColorFunc) ([]byte, error) {
	if !f.IsValid() {
		return nil, errors.Errorf("vertex: unknown format %v", int32(f))
	}
	if color == nil {
		color = White
	}
	p := &packer{buf: make([]byte, f.Stride()*len(md.Vertices))}
	for i := range md.Vertices {
		v := &md.Vertices[i]
		p.vec3(v.Position)
		switch f {
		case PosColor:
			p.vec4(color(i, v))
		case PosNormal:
			p.vec3(v.Normal)
		case PosNormalTex:
			p.vec3(v.Normal)
			p.vec2(v.TexCoord)
		case Full:
			p.vec3(v.Normal)
			p.vec4(v.Tangent)
			p.vec2(v.TexCoord)
		}
	}
	return p.buf, nil
}

// PackIndices returns the indices as a little-endian uint32 index buffer.
func PackIndices(idx []uint32) []byte {
	buf := make([]byte, 4*len(idx))
	for i, x := range idx {
		binary.LittleEndian.PutUint32(buf[4*i:], x)
	}
	return buf
}
