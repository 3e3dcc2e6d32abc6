// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Imukata-aH/DirectX11Practice/base/tolassert"
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	c, err := Open(filepath.Join("testdata", "shapes.toml"))
	require.NoError(t, err)
	require.Len(t, c.Shapes, 7)
	assert.Equal(t, float32(15), c.Camera.Radius)
	assert.Equal(t, float32(1000), c.Lens.Far)
	assert.Equal(t, []int{2}, c.Lights.Off)
	require.NotNil(t, c.Lights.Point)
	assert.Equal(t, float32(25), c.Lights.Point.Range)

	ball := c.Shapes[2]
	assert.Equal(t, geogen.Geosphere, ball.Shape)
	assert.Equal(t, 3, ball.Subdivisions)
	assert.Equal(t, math32.Vec3(2, 2, 2), ball.Scale)

	// unset values come from the shape defaults
	capShape := c.Shapes[5]
	assert.Equal(t, 20, capShape.Slices)
	assert.Equal(t, 20, capShape.Stacks)

	// the material was not set
	assert.Equal(t, float32(16), c.Material.Specular.W)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)
}

func TestFillDefaults(t *testing.T) {
	c := &Config{}
	c.FillDefaults()
	require.Len(t, c.Shapes, 1)
	assert.Equal(t, geogen.Grid, c.Shapes[0].Shape)
	assert.Equal(t, 50, c.Shapes[0].Rows)
	assert.Equal(t, float32(5), c.Camera.Radius)
	tolassert.EqualTol(t, 0.25*math32.Pi, c.Lens.FOV, 1e-6)
}

func TestBuild(t *testing.T) {
	c, err := Open(filepath.Join("testdata", "shapes.toml"))
	require.NoError(t, err)
	bt, err := c.Build(context.Background())
	require.NoError(t, err)

	assert.Len(t, bt.Batch.Submeshes, 5)
	require.Len(t, bt.Draws, 7)
	assert.Equal(t, "column", bt.Draws[4].Submesh.Name)
	assert.Equal(t, bt.Draws[3].Submesh, bt.Draws[4].Submesh)

	bb := bt.Draws[1].WorldBBox()
	tolassert.EqualTol(t, -1.5, bb.Min.X, 1e-5)
	tolassert.EqualTol(t, 1.5, bb.Max.X, 1e-5)
	tolassert.EqualTol(t, 0, bb.Min.Y, 1e-5)
	tolassert.EqualTol(t, 1, bb.Max.Y, 1e-5)

	assert.Equal(t, [3]bool{true, true, false}, bt.Frame.Enabled)
	assert.NotNil(t, bt.Frame.Point)
	assert.Equal(t, c.Camera.Eye(), bt.Frame.EyePos)
	assert.Equal(t, c.Camera.View(), bt.View)
}

func TestBuildWorld(t *testing.T) {
	c, err := Open(filepath.Join("testdata", "shapes.toml"))
	require.NoError(t, err)
	bt, err := c.Build(context.Background())
	require.NoError(t, err)

	nv := 0
	for _, d := range bt.Draws {
		nv += d.Submesh.VertexCount
	}
	md, clrs := bt.World(&c.Material, true)
	require.NoError(t, md.Validate())
	assert.Len(t, md.Vertices, nv)
	assert.Len(t, clrs, nv)
	tolassert.EqualTol(t, 4, md.BBox().Max.Y, 1e-4)

	md, clrs = bt.World(&c.Material, false)
	assert.Len(t, md.Vertices, nv)
	assert.Nil(t, clrs)
}

func TestBuildErrors(t *testing.T) {
	c := &Config{}
	c.Shapes = []Shape{{Name: "a", Mesh: "nope"}}
	c.FillDefaults()
	_, err := c.Build(context.Background())
	assert.Error(t, err)

	c.Shapes = []Shape{{Name: "ball", Params: geogen.Params{Shape: geogen.Sphere, Radius: -1}}}
	c.FillDefaults()
	_, err = c.Build(context.Background())
	assert.ErrorIs(t, err, geogen.ErrInvalidParameter)

	c.Shapes = []Shape{{Params: geogen.Params{Shape: geogen.Box}}}
	_, err = c.Build(context.Background())
	assert.Error(t, err)
}

func TestLightsFrame(t *testing.T) {
	l := Lights{Off: []int{0, 0, 7}}
	f := l.Frame()
	assert.Equal(t, [3]bool{false, true, true}, f.Enabled)
	assert.Nil(t, f.Point)
}

func TestSave(t *testing.T) {
	c, err := Open(filepath.Join("testdata", "shapes.toml"))
	require.NoError(t, err)
	fn := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, c.Save(fn))
	got, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, c.Shapes, got.Shapes)
	assert.Equal(t, c.Camera, got.Camera)
}
