// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle() *geogen.MeshData {
	n := math32.Vec3(0, 0, -1)
	tan := math32.Vec3(1, 0, 0)
	return &geogen.MeshData{
		Vertices: []geogen.Vertex{
			geogen.NewVertex(math32.Vec3(0, 0, 0), n, tan, 0, 0),
			geogen.NewVertex(math32.Vec3(1, 0, 0), n, tan, 1, 0),
			geogen.NewVertex(math32.Vec3(0, 1, 0), n, tan, 0, 1),
		},
		Indices: []uint32{0, 1, 2},
	}
}

func TestWriteOBJ(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteOBJ(&b, triangle(), &OBJOptions{Name: "tri"}))
	want := `o tri
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 1
vt 1 1
vt 0 0
vn 0 0 -1
vn 0 0 -1
vn 0 0 -1
f 1/1/1 2/2/2 3/3/3
`
	assert.Equal(t, want, b.String())
}

func TestWriteOBJRightHanded(t *testing.T) {
	var b bytes.Buffer
	md := triangle()
	md.Vertices[2].Position.Z = 2
	require.NoError(t, WriteOBJ(&b, md, &OBJOptions{RightHanded: true}))
	out := b.String()
	assert.NotContains(t, out, "o ")
	assert.Contains(t, out, "v 0 0 0\n")
	assert.Contains(t, out, "v 0 1 -2\n")
	assert.Contains(t, out, "vn 0 0 1\n")
	assert.Contains(t, out, "f 1/1/1 3/3/3 2/2/2\n")
}

func TestWriteOBJColors(t *testing.T) {
	var b bytes.Buffer
	clrs := []math32.Vector4{
		math32.Vec4(1, 0, 0, 1),
		math32.Vec4(0, 1, 0, 1),
		math32.Vec4(0, 0, 0.5, 1),
	}
	require.NoError(t, WriteOBJ(&b, triangle(), &OBJOptions{Colors: clrs}))
	assert.Contains(t, b.String(), "v 1 0 0 0 1 0\n")
	assert.Contains(t, b.String(), "v 0 1 0 0 0 0.5\n")

	err := WriteOBJ(&b, triangle(), &OBJOptions{Colors: clrs[:2]})
	assert.Error(t, err)
}

func TestWriteOBJInvalid(t *testing.T) {
	md := triangle()
	md.Indices = append(md.Indices, 0, 1, 7)
	var b bytes.Buffer
	err := WriteOBJ(&b, md, nil)
	assert.ErrorIs(t, err, geogen.ErrInvalidMesh)
	assert.Zero(t, b.Len())
}

func TestSaveOBJ(t *testing.T) {
	md := errors.Must1(geogen.CreateBox(1, 2, 3))
	fn := filepath.Join(t.TempDir(), "box.obj")
	require.NoError(t, SaveOBJ(fn, md, nil))
	data := errors.Must1(os.ReadFile(fn))
	counts := map[string]int{}
	for _, ln := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		counts[strings.Fields(ln)[0]]++
	}
	assert.Equal(t, map[string]int{"v": 24, "vt": 24, "vn": 24, "f": 12}, counts)
}

func TestSummary(t *testing.T) {
	md := errors.Must1(geogen.CreateBox(2, 4, 6))
	s := NewSummary("box", md)
	assert.Equal(t, 24, s.Vertices)
	assert.Equal(t, 36, s.Indices)
	assert.Equal(t, 12, s.Triangles)
	assert.Equal(t, [3]float32{-1, -2, -3}, s.Min)
	assert.Equal(t, [3]float32{1, 2, 3}, s.Max)
	assert.Equal(t, "box: 24 vertices, 36 indices, 12 triangles, bbox [-1 -2 -3] - [1 2 3]", s.String())

	var b bytes.Buffer
	require.NoError(t, WriteSummary(s, &b))
	assert.Contains(t, b.String(), "name: box\n")
	assert.Contains(t, b.String(), "min: [-1, -2, -3]\n")

	fn := filepath.Join(t.TempDir(), "box.yaml")
	require.NoError(t, SaveSummary(s, fn))
	got := errors.Must1(OpenSummary(fn))
	assert.Equal(t, s, got)
}
