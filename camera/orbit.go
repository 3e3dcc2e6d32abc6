// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the orbiting viewer camera of the demos,
// driven by mouse drags, and its left-handed view and projection
// matrices.
package camera

import (
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Buttons is a set of pressed mouse buttons.
type Buttons int32

const (
	// Left orbits the camera around the target.
	Left Buttons = 1 << iota

	// Right zooms the camera in and out.
	Right
)

// Has returns whether all of the given buttons are pressed.
func (b Buttons) Has(o Buttons) bool {
	return b&o == o
}

// Orbit is a camera on a sphere around the origin, positioned by
// spherical angles. Theta is measured from +X towards +Z and Phi
// from +Y.
type Orbit struct {

	// Theta is the azimuth in radians.
	Theta float32 `toml:"theta"`

	// Phi is the polar angle in radians, kept within
	// [PhiMargin, pi - PhiMargin] by mouse moves.
	Phi float32 `toml:"phi"`

	// Radius is the distance from the origin.
	Radius float32 `toml:"radius"`

	// MinRadius and MaxRadius bound Radius when zooming.
	MinRadius float32 `toml:"min_radius"`
	MaxRadius float32 `toml:"max_radius"`

	// RotateDegPerPixel is the orbit rate for left drags.
	RotateDegPerPixel float32 `toml:"rotate_deg_per_pixel"`

	// ZoomPerPixel is the zoom rate for right drags.
	ZoomPerPixel float32 `toml:"zoom_per_pixel"`

	lastX, lastY int
}

// PhiMargin keeps the camera away from the poles, where the
// view up vector would be parallel to the view direction.
const PhiMargin = 0.1

// Defaults sets the starting view of the demos.
func (o *Orbit) Defaults() {
	o.Theta = 1.5 * math32.Pi
	o.Phi = 0.25 * math32.Pi
	o.Radius = 5
	o.MinRadius = 3
	o.MaxRadius = 15
	o.RotateDegPerPixel = 0.25
	o.ZoomPerPixel = 0.005
}

// MouseDown records the position where a drag starts.
func (o *Orbit) MouseDown(x, y int) {
	o.lastX, o.lastY = x, y
}

// MouseMove updates the camera for a move to (x, y) with the given
// buttons held: Left orbits and Right zooms.
func (o *Orbit) MouseMove(buttons Buttons, x, y int) {
	dx := float32(x - o.lastX)
	dy := float32(y - o.lastY)
	switch {
	case buttons.Has(Left):
		o.Theta += math32.DegToRad(o.RotateDegPerPixel * dx)
		o.Phi += math32.DegToRad(o.RotateDegPerPixel * dy)
		o.Phi = math32.Clamp(o.Phi, PhiMargin, math32.Pi-PhiMargin)
	case buttons.Has(Right):
		o.Radius += o.ZoomPerPixel * (dx - dy)
		o.Radius = math32.Clamp(o.Radius, o.MinRadius, o.MaxRadius)
	}
	o.lastX, o.lastY = x, y
}

// Eye returns the camera position.
func (o *Orbit) Eye() math32.Vector3 {
	sp := math32.Sin(o.Phi)
	return math32.Vec3(o.Radius*sp*math32.Cos(o.Theta), o.Radius*math32.Cos(o.Phi), o.Radius*sp*math32.Sin(o.Theta))
}

// View returns the left-handed view matrix looking from [Orbit.Eye]
// at the origin with +Y up.
func (o *Orbit) View() mgl32.Mat4 {
	return LookAtLH(o.Eye(), math32.Vector3{}, math32.Vec3(0, 1, 0))
}

func vec3(v math32.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// LookAtLH returns a left-handed view matrix, for which the view
// direction maps to +Z.
func LookAtLH(eye, target, up math32.Vector3) mgl32.Mat4 {
	e := vec3(eye)
	z := vec3(target).Sub(e).Normalize()
	x := vec3(up).Cross(z).Normalize()
	y := z.Cross(x)
	return mgl32.Mat4{
		x.X(), y.X(), z.X(), 0,
		x.Y(), y.Y(), z.Y(), 0,
		x.Z(), y.Z(), z.Z(), 0,
		-x.Dot(e), -y.Dot(e), -z.Dot(e), 1,
	}
}
