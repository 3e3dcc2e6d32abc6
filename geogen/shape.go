// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geogen

import (
	"strconv"
	"strings"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
)

// Shape names one of the generated shapes.
type Shape int32

const (
	// Box is a cuboid, see [CreateBox].
	Box Shape = iota

	// Sphere is a latitude / longitude sphere, see [CreateSphere].
	Sphere

	// Geosphere is a subdivided icosahedron, see [CreateGeosphere].
	Geosphere

	// Cylinder is a cylinder or frustum, see [CreateCylinder].
	Cylinder

	// Grid is a flat grid in the XZ plane, see [CreateGrid].
	Grid

	shapeN
)

var shapeNames = [shapeN]string{"box", "sphere", "geosphere", "cylinder", "grid"}

// ShapeValues returns all values of the Shape enum.
func ShapeValues() []Shape {
	return []Shape{Box, Sphere, Geosphere, Cylinder, Grid}
}

// String returns the lower case name of the shape.
func (s Shape) String() string {
	if s >= 0 && s < shapeN {
		return shapeNames[s]
	}
	return "Shape(" + strconv.Itoa(int(s)) + ")"
}

// SetString sets the shape from its name, ignoring case.
func (s *Shape) SetString(str string) error {
	for i, nm := range shapeNames {
		if strings.EqualFold(nm, str) {
			*s = Shape(i)
			return nil
		}
	}
	return errors.Errorf("%q is not a valid value for type Shape", str)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (s *Shape) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}

// Type is the name of the type for pflag.Value.
func (s *Shape) Type() string {
	return "shape"
}

// Set implements pflag.Value.
func (s *Shape) Set(str string) error {
	return s.SetString(str)
}

// Params holds the parameters of any shape, so that a shape can be
// named in a configuration file or on the command line. Only the fields
// used by Shape are read.
type Params struct {

	// Shape selects the generator.
	Shape Shape `toml:"shape" yaml:"shape"`

	// Width is the X extent of a box or grid.
	Width float32 `toml:"width,omitempty" yaml:"width,omitempty"`

	// Height is the Y extent of a box or cylinder.
	Height float32 `toml:"height,omitempty" yaml:"height,omitempty"`

	// Depth is the Z extent of a box or grid.
	Depth float32 `toml:"depth,omitempty" yaml:"depth,omitempty"`

	// Radius of a sphere or geosphere.
	Radius float32 `toml:"radius,omitempty" yaml:"radius,omitempty"`

	// BottomRadius is the cylinder radius at y = -Height/2.
	BottomRadius float32 `toml:"bottom_radius,omitempty" yaml:"bottom_radius,omitempty"`

	// TopRadius is the cylinder radius at y = Height/2.
	TopRadius float32 `toml:"top_radius,omitempty" yaml:"top_radius,omitempty"`

	// Slices is the number of divisions around the Y axis of
	// a sphere or cylinder.
	Slices int `toml:"slices,omitempty" yaml:"slices,omitempty"`

	// Stacks is the number of divisions along the Y axis of
	// a sphere or cylinder.
	Stacks int `toml:"stacks,omitempty" yaml:"stacks,omitempty"`

	// Subdivisions is the geosphere subdivision level.
	Subdivisions int `toml:"subdivisions,omitempty" yaml:"subdivisions,omitempty"`

	// Rows is the number of grid vertices along Z.
	Rows int `toml:"rows,omitempty" yaml:"rows,omitempty"`

	// Cols is the number of grid vertices along X.
	Cols int `toml:"cols,omitempty" yaml:"cols,omitempty"`
}

// Defaults sets the parameters of the shapes demo scene: a unit box,
// a 0.5 radius sphere with 20 slices and stacks, a 0.5 radius level 2
// geosphere, a 3 high cylinder tapering from 0.5 to 0.3 and a 20 by 30
// grid of 60 rows by 40 columns.
func (p *Params) Defaults() {
	p.Width, p.Height, p.Depth = 1, 1, 1
	p.Radius = 0.5
	p.BottomRadius, p.TopRadius = 0.5, 0.3
	p.Slices, p.Stacks = 20, 20
	p.Subdivisions = 2
	p.Rows, p.Cols = 60, 40
	switch p.Shape {
	case Cylinder:
		p.Height, p.Stacks = 3, 20
	case Grid:
		p.Width, p.Depth = 20, 30
	}
}

// FillDefaults sets every zero field of p to its [Params.Defaults]
// value for p.Shape, leaving explicitly set fields alone.
// Subdivisions is never filled, as level 0 is valid.
func (p *Params) FillDefaults() {
	d := Params{Shape: p.Shape}
	d.Defaults()
	fill := func(v *float32, dv float32) {
		if *v == 0 {
			*v = dv
		}
	}
	filli := func(v *int, dv int) {
		if *v == 0 {
			*v = dv
		}
	}
	fill(&p.Width, d.Width)
	fill(&p.Height, d.Height)
	fill(&p.Depth, d.Depth)
	fill(&p.Radius, d.Radius)
	fill(&p.BottomRadius, d.BottomRadius)
	fill(&p.TopRadius, d.TopRadius)
	filli(&p.Slices, d.Slices)
	filli(&p.Stacks, d.Stacks)
	filli(&p.Rows, d.Rows)
	filli(&p.Cols, d.Cols)
}

// Generate calls the generator for p.Shape with the matching parameters.
func Generate(p Params) (*MeshData, error) {
	switch p.Shape {
	case Box:
		return CreateBox(p.Width, p.Height, p.Depth)
	case Sphere:
		return CreateSphere(p.Radius, p.Slices, p.Stacks)
	case Geosphere:
		return CreateGeosphere(p.Radius, p.Subdivisions)
	case Cylinder:
		return CreateCylinder(p.BottomRadius, p.TopRadius, p.Height, p.Slices, p.Stacks)
	case Grid:
		return CreateGrid(p.Width, p.Depth, p.Rows, p.Cols)
	}
	return nil, &ParamError{Shape: p.Shape, Param: "shape", Value: int32(p.Shape)}
}
