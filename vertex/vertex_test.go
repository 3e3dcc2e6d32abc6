// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vertex

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatAt(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func TestStride(t *testing.T) {
	assert.Equal(t, 28, PosColor.Stride())
	assert.Equal(t, 24, PosNormal.Stride())
	assert.Equal(t, 32, PosNormalTex.Stride())
	assert.Equal(t, 48, Full.Stride())
	assert.Equal(t, 0, Format(7).Stride())
}

func TestLayout(t *testing.T) {
	sizes := map[gputypes.VertexFormat]int{
		gputypes.VertexFormatFloat32x2: 8,
		gputypes.VertexFormatFloat32x3: 12,
		gputypes.VertexFormatFloat32x4: 16,
	}
	for _, f := range FormatValues() {
		l := f.Layout()
		assert.Equal(t, f.Stride(), int(l.ArrayStride), f.String())
		assert.Equal(t, gputypes.VertexStepModeVertex, l.StepMode)
		off := 0
		for i, a := range l.Attributes {
			assert.Equal(t, off, int(a.Offset), "%v attribute %d", f, i)
			assert.Equal(t, i, int(a.ShaderLocation))
			off += sizes[a.Format]
		}
		assert.Equal(t, f.Stride(), off, f.String())
	}

	// the returned attributes are a copy
	l := Full.Layout()
	l.Attributes[0].ShaderLocation = 9
	assert.Equal(t, 0, int(Full.Layout().Attributes[0].ShaderLocation))
}

func TestPack(t *testing.T) {
	md := errors.Must1(geogen.CreateBox(2, 2, 2))
	v := md.Vertices[3]

	b, err := Pack(md, Full, nil)
	require.NoError(t, err)
	require.Len(t, b, 24*48)
	off := 3 * 48
	assert.Equal(t, v.Position.X, floatAt(b, off))
	assert.Equal(t, v.Normal.Z, floatAt(b, off+20))
	assert.Equal(t, v.Tangent.W, floatAt(b, off+36))
	assert.Equal(t, v.TexCoord.Y, floatAt(b, off+44))

	b, err = Pack(md, PosNormalTex, nil)
	require.NoError(t, err)
	require.Len(t, b, 24*32)
	assert.Equal(t, v.TexCoord.X, floatAt(b, 3*32+24))

	b, err = Pack(md, PosColor, nil)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.Equal(t, float32(1), floatAt(b, 3*28+12+4*i))
	}

	clrs := make([]math32.Vector4, len(md.Vertices))
	clrs[3] = math32.Vec4(0.25, 0.5, 0.75, 1)
	b, err = Pack(md, PosColor, Colors(clrs))
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), floatAt(b, 3*28+16))

	_, err = Pack(md, Format(-1), nil)
	assert.Error(t, err)
}

func TestPackIndices(t *testing.T) {
	b := PackIndices([]uint32{1, 2, 0x01020304})
	assert.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0, 4, 3, 2, 1}, b)
}

func TestFormatString(t *testing.T) {
	for _, f := range FormatValues() {
		var g Format
		require.NoError(t, g.Set(f.String()))
		assert.Equal(t, f, g)
	}
	var f Format
	assert.Error(t, f.SetString("rgb"))
}
