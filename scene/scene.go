// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene loads a TOML description of shapes, their placement,
// the camera and the lights, and builds it into a mesh batch.
package scene

import (
	"context"
	"log/slog"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/base/iox/tomlx"
	"github.com/Imukata-aH/DirectX11Practice/batch"
	"github.com/Imukata-aH/DirectX11Practice/camera"
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/lighting"
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Config is a scene file.
type Config struct {
	Camera   camera.Orbit      `toml:"camera"`
	Lens     camera.Lens       `toml:"lens"`
	Material lighting.Material `toml:"material"`
	Lights   Lights            `toml:"lights"`
	Shapes   []Shape           `toml:"shapes"`
}

// Shape is one object of the scene. It either generates a mesh from
// its shape parameters, or reuses the mesh of an earlier shape named
// by Mesh.
type Shape struct {

	// Name identifies the shape, and its mesh in the batch.
	Name string `toml:"name"`

	// Mesh is the name of another shape whose mesh is drawn here.
	// If set, the shape parameters are ignored.
	Mesh string `toml:"mesh,omitempty"`

	geogen.Params

	Position math32.Vector3 `toml:"position"`

	// Rotation is in degrees about X, then Y, then Z.
	Rotation math32.Vector3 `toml:"rotation"`

	Scale math32.Vector3 `toml:"scale"`
}

// Lights selects the lights of the scene. The three directional
// lights of [lighting.DefaultFrame] are on unless listed in Off.
type Lights struct {
	Off   []int                `toml:"off"`
	Point *lighting.PointLight `toml:"point"`
	Spot  *lighting.SpotLight  `toml:"spot"`
}

// Defaults sets the camera, lens and material, for a new scene.
func (c *Config) Defaults() {
	c.Camera.Defaults()
	c.Lens.Defaults()
	c.Material.Defaults()
}

// FillDefaults sets the unset values of a loaded scene.
// A scene without shapes gets the grid of the shapes demo.
func (c *Config) FillDefaults() {
	if c.Camera.Radius == 0 {
		c.Camera.Defaults()
	}
	if c.Lens.FOV == 0 {
		c.Lens.Defaults()
	}
	if c.Material.Diffuse == (math32.Vector4{}) {
		c.Material.Defaults()
	}
	if len(c.Shapes) == 0 {
		c.Shapes = []Shape{{Name: "grid", Params: geogen.Params{
			Shape: geogen.Grid, Width: 10, Depth: 10, Rows: 50, Cols: 50}}}
	}
	for i := range c.Shapes {
		if c.Shapes[i].Mesh == "" {
			c.Shapes[i].FillDefaults()
		}
	}
}

// Open loads a scene from the given TOML file and fills its defaults.
func Open(filename string) (*Config, error) {
	c := &Config{}
	if err := tomlx.Open(c, filename); err != nil {
		return nil, err
	}
	c.FillDefaults()
	return c, nil
}

// Save writes the scene to the given TOML file.
func (c *Config) Save(filename string) error {
	return tomlx.Save(c, filename)
}

// Built is a scene ready to draw.
type Built struct {
	Batch *batch.Batch
	Draws []batch.Draw
	Frame lighting.Frame
	View  mgl32.Mat4
	Proj  mgl32.Mat4
}

// Build generates the meshes of the scene and places its shapes.
func (c *Config) Build(ctx context.Context) (*Built, error) {
	var items []batch.Item
	objs := make([]batch.Object, len(c.Shapes))
	for i, sh := range c.Shapes {
		if sh.Name == "" {
			return nil, errors.Errorf("scene: shape %d has no name", i)
		}
		mesh := sh.Mesh
		if mesh == "" {
			mesh = sh.Name
			items = append(items, batch.Item{Name: sh.Name, Params: sh.Params})
		}
		objs[i] = batch.Object{
			Mesh:     mesh,
			Position: sh.Position,
			Rotation: math32.Vec3(math32.DegToRad(sh.Rotation.X), math32.DegToRad(sh.Rotation.Y), math32.DegToRad(sh.Rotation.Z)),
			Scale:    sh.Scale,
		}
	}
	b, err := batch.Build(ctx, items)
	if err != nil {
		return nil, errors.Errorf("scene: %w", err)
	}
	draws, err := b.DrawList(objs)
	if err != nil {
		return nil, errors.Errorf("scene: %w", err)
	}

	bt := &Built{Batch: b, Draws: draws, Frame: c.Lights.Frame()}
	bt.Frame.EyePos = c.Camera.Eye()
	bt.View = c.Camera.View()
	bt.Proj = c.Lens.Projection()
	slog.Debug("scene: built", "meshes", len(items), "objects", len(draws), "vertices", len(b.Mesh.Vertices))
	return bt, nil
}

// Frame returns the lighting frame for these settings.
func (l *Lights) Frame() lighting.Frame {
	f := lighting.DefaultFrame()
	for _, i := range l.Off {
		if i >= 0 && i < lighting.NumDirLights && f.Enabled[i] {
			f.Toggle(i)
		}
	}
	f.Point = l.Point
	f.Spot = l.Spot
	return f
}

// World returns all objects of the scene as one world space mesh,
// with per-vertex colors baked from the scene lights if bake is set.
func (bt *Built) World(mat *lighting.Material, bake bool) (*geogen.MeshData, []math32.Vector4) {
	md := bt.Batch.Flatten(bt.Draws)
	if !bake {
		return md, nil
	}
	return md, lighting.Bake(md, mat, &bt.Frame)
}
