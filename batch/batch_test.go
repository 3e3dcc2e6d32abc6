// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"context"
	"testing"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/base/tolassert"
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchAdd(t *testing.T) {
	box := errors.Must1(geogen.CreateBox(1, 1, 1))
	sphere := errors.Must1(geogen.CreateSphere(1, 5, 4))

	b := &Batch{}
	sm, err := b.Add("box", box)
	require.NoError(t, err)
	assert.Equal(t, 0, sm.BaseVertex)
	assert.Equal(t, 0, sm.StartIndex)

	sm, err = b.Add("sphere", sphere)
	require.NoError(t, err)
	assert.Equal(t, 24, sm.BaseVertex)
	assert.Equal(t, 36, sm.StartIndex)
	assert.Equal(t, len(sphere.Indices), sm.IndexCount)
	assert.Equal(t, len(sphere.Vertices), sm.VertexCount)
	require.NoError(t, b.Mesh.Validate())

	// each submesh's indices are its own, offset by BaseVertex
	for i, idx := range b.Indices("sphere") {
		assert.Equal(t, sphere.Indices[i]+24, idx)
	}
	got, ok := b.Lookup("box")
	assert.True(t, ok)
	assert.Equal(t, math32.B3(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5), got.BBox)
	_, ok = b.Lookup("torus")
	assert.False(t, ok)
	assert.Nil(t, b.Indices("torus"))

	assert.Equal(t, box.BBox().Union(sphere.BBox()), b.BBox)

	_, err = b.Add("box", box)
	assert.Error(t, err)

	_, err = b.Add("bad", &geogen.MeshData{Indices: []uint32{0, 1, 2}})
	assert.ErrorIs(t, err, geogen.ErrInvalidMesh)
}

func TestBuild(t *testing.T) {
	items := []Item{}
	for _, s := range geogen.ShapeValues() {
		p := geogen.Params{Shape: s}
		p.Defaults()
		items = append(items, Item{Name: s.String(), Params: p})
	}
	b, err := Build(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, b.Submeshes, len(items))

	base := 0
	for i, sm := range b.Submeshes {
		assert.Equal(t, items[i].Name, sm.Name)
		assert.Equal(t, base, sm.BaseVertex)
		base += sm.VertexCount
	}
	assert.Len(t, b.Mesh.Vertices, base)

	// deterministic across runs
	b2, err := Build(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, b.Mesh, b2.Mesh)
}

func TestBuildError(t *testing.T) {
	items := []Item{
		{Name: "ok", Params: geogen.Params{Shape: geogen.Box, Width: 1, Height: 1, Depth: 1}},
		{Name: "bad", Params: geogen.Params{Shape: geogen.Sphere, Radius: 1, Slices: 1, Stacks: 5}},
	}
	b, err := Build(context.Background(), items)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, geogen.ErrInvalidParameter)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b, err = Build(ctx, items[:1])
	assert.Nil(t, b)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestObjectWorld(t *testing.T) {
	ob := Object{Mesh: "box"}
	assert.Equal(t, mgl32.Ident4(), ob.World())

	ob = Object{
		Position: math32.Vec3(1, 2, 3),
		Rotation: math32.Vec3(0, math32.Pi/2, 0),
		Scale:    math32.Vec3(2, 2, 2),
	}
	// scale, then rotate +X onto -Z about Y, then translate
	p := TransformPoint(ob.World(), math32.Vec3(1, 0, 0))
	tolassert.EqualTol(t, 1, p.X, 1e-5)
	tolassert.EqualTol(t, 2, p.Y, 1e-5)
	tolassert.EqualTol(t, 1, p.Z, 1e-5)
}

func TestDrawList(t *testing.T) {
	b := &Batch{}
	errors.Must1(b.Add("box", errors.Must1(geogen.CreateBox(2, 2, 2))))

	draws, err := b.DrawList([]Object{{Mesh: "box", Position: math32.Vec3(5, 0, 0)}})
	require.NoError(t, err)
	require.Len(t, draws, 1)
	assert.Equal(t, math32.Vec3(1, 1, 1), draws[0].Object.Scale)
	bb := draws[0].WorldBBox()
	tolassert.EqualTol(t, 4, bb.Min.X, 1e-5)
	tolassert.EqualTol(t, 6, bb.Max.X, 1e-5)

	_, err = b.DrawList([]Object{{Mesh: "cone"}})
	assert.Error(t, err)
}

func TestFlatten(t *testing.T) {
	b := &Batch{}
	errors.Must1(b.Add("box", errors.Must1(geogen.CreateBox(2, 2, 2))))
	errors.Must1(b.Add("grid", errors.Must1(geogen.CreateGrid(2, 2, 2, 2))))

	draws, err := b.DrawList([]Object{
		{Mesh: "grid", Position: math32.Vec3(0, -1, 0)},
		{Mesh: "box", Position: math32.Vec3(5, 0, 0), Scale: math32.Vec3(1, 2, 1)},
		{Mesh: "box", Scale: math32.Vec3(-1, 1, 1)},
	})
	require.NoError(t, err)
	md := b.Flatten(draws)
	require.NoError(t, md.Validate())
	assert.Len(t, md.Vertices, 4+24+24)
	assert.Len(t, md.Indices, 6+36+36)

	// grid first, moved down
	assert.Equal(t, float32(-1), md.Vertices[0].Position.Y)
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, md.Indices[:6])

	bb := md.BBox()
	tolassert.EqualTol(t, 6, bb.Max.X, 1e-5)
	tolassert.EqualTol(t, 2, bb.Max.Y, 1e-5)

	// normals stay unit and triangles outward facing, even mirrored
	for i, v := range md.Vertices {
		tolassert.EqualTol(t, 1, v.Normal.Length(), 1e-5, "normal %d", i)
		tolassert.EqualTol(t, 1, v.Tangent.Vector3().Length(), 1e-5, "tangent %d", i)
	}
	for i := 0; i < md.NumTriangles(); i++ {
		n := md.Triangle(i).Normal()
		vn := md.Vertices[md.Indices[3*i]].Normal
		assert.Greater(t, n.Dot(vn), float32(0), "triangle %d", i)
	}
}
