// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"fmt"
	"io"

	"github.com/Imukata-aH/DirectX11Practice/base/iox/yamlx"
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/math32"
)

// Summary describes a mesh without its data.
type Summary struct {
	Name      string     `yaml:"name"`
	Vertices  int        `yaml:"vertices"`
	Indices   int        `yaml:"indices"`
	Triangles int        `yaml:"triangles"`
	Min       [3]float32 `yaml:"min,flow"`
	Max       [3]float32 `yaml:"max,flow"`
}

// NewSummary returns the [Summary] of md under the given name.
func NewSummary(name string, md *geogen.MeshData) *Summary {
	s := &Summary{
		Name:      name,
		Vertices:  len(md.Vertices),
		Indices:   len(md.Indices),
		Triangles: md.NumTriangles(),
	}
	if bb := md.BBox(); !bb.IsEmpty() {
		s.Min = vec3Array(bb.Min)
		s.Max = vec3Array(bb.Max)
	}
	return s
}

func vec3Array(v math32.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// String returns a one-line description of the summary.
func (s *Summary) String() string {
	return fmt.Sprintf("%s: %d vertices, %d indices, %d triangles, bbox %v - %v",
		s.Name, s.Vertices, s.Indices, s.Triangles, s.Min, s.Max)
}

// SaveSummary saves s to the given file in YAML format.
func SaveSummary(s *Summary, filename string) error {
	return yamlx.Save(s, filename)
}

// WriteSummary writes s to w in YAML format.
func WriteSummary(s *Summary, w io.Writer) error {
	return yamlx.Write(s, w)
}

// OpenSummary reads a [Summary] from the given YAML file.
func OpenSummary(filename string) (*Summary, error) {
	s := &Summary{}
	return s, yamlx.Open(s, filename)
}
