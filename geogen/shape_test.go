// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geogen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeString(t *testing.T) {
	for _, s := range ShapeValues() {
		var got Shape
		require.NoError(t, got.SetString(s.String()))
		assert.Equal(t, s, got)
	}
	var s Shape
	assert.NoError(t, s.UnmarshalText([]byte("GeoSphere")))
	assert.Equal(t, Geosphere, s)
	b, err := s.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "geosphere", string(b))

	assert.Error(t, s.Set("torus"))
	assert.Equal(t, "Shape(9)", Shape(9).String())
}

func TestGenerate(t *testing.T) {
	counts := map[Shape]int{
		Box:       24,
		Sphere:    2 + 19*21,
		Geosphere: 162,
		Cylinder:  21*21 + 2*22,
		Grid:      60 * 40,
	}
	for _, s := range ShapeValues() {
		p := Params{Shape: s}
		p.Defaults()
		md, err := Generate(p)
		require.NoError(t, err, s.String())
		checkMesh(t, md)
		assert.Len(t, md.Vertices, counts[s], s.String())
	}

	_, err := Generate(Params{Shape: Shape(42)})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Generate(Params{Shape: Sphere})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestFillDefaults(t *testing.T) {
	p := Params{Shape: Cylinder, TopRadius: 0, BottomRadius: 1, Slices: 8}
	p.FillDefaults()
	assert.Equal(t, float32(0.3), p.TopRadius)
	assert.Equal(t, float32(1), p.BottomRadius)
	assert.Equal(t, 8, p.Slices)
	assert.Equal(t, 20, p.Stacks)
	assert.Equal(t, float32(3), p.Height)

	p = Params{Shape: Cylinder}
	p.FillDefaults()
	assert.Equal(t, float32(0.5), p.BottomRadius)
	assert.Equal(t, float32(0.3), p.TopRadius)
}
