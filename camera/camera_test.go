// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"github.com/Imukata-aH/DirectX11Practice/base/tolassert"
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func newOrbit() *Orbit {
	o := &Orbit{}
	o.Defaults()
	return o
}

func TestEye(t *testing.T) {
	o := newOrbit()
	e := o.Eye()
	tolassert.EqualTol(t, 5, e.Length(), tol)
	// theta 1.5 pi puts the camera on -Z, phi 0.25 pi above the horizon
	tolassert.EqualTol(t, 0, e.X, tol)
	tolassert.EqualTol(t, 5*math32.Cos(0.25*math32.Pi), e.Y, tol)
	tolassert.EqualTol(t, -5*math32.Sin(0.25*math32.Pi), e.Z, tol)
}

func TestMouseOrbit(t *testing.T) {
	o := newOrbit()
	o.MouseDown(100, 100)
	o.MouseMove(Left, 140, 100)
	tolassert.EqualTol(t, 1.5*math32.Pi+math32.DegToRad(10), o.Theta, tol)
	tolassert.EqualTol(t, 0.25*math32.Pi, o.Phi, tol)

	// dragging far down clamps phi short of the south pole
	o.MouseMove(Left, 140, 100000)
	tolassert.EqualTol(t, math32.Pi-PhiMargin, o.Phi, tol)
	o.MouseMove(Left, 140, -100000)
	tolassert.EqualTol(t, PhiMargin, o.Phi, tol)

	// no buttons only tracks the position
	th := o.Theta
	o.MouseMove(0, 500, 500)
	assert.Equal(t, th, o.Theta)
}

func TestMouseZoom(t *testing.T) {
	o := newOrbit()
	o.MouseDown(0, 0)
	o.MouseMove(Right, 200, 0)
	tolassert.EqualTol(t, 6, o.Radius, tol)
	o.MouseMove(Right, 200, 200)
	tolassert.EqualTol(t, 5, o.Radius, tol)

	o.MouseMove(Right, 100000, 0)
	assert.Equal(t, float32(15), o.Radius)
	o.MouseMove(Right, -100000, 0)
	assert.Equal(t, float32(3), o.Radius)
}

func TestView(t *testing.T) {
	o := newOrbit()
	v := o.View()
	// the eye maps to the view origin
	e := o.Eye()
	p := v.Mul4x1(mgl32.Vec4{e.X, e.Y, e.Z, 1})
	tolassert.EqualTol(t, 0, p.X(), tol)
	tolassert.EqualTol(t, 0, p.Y(), tol)
	tolassert.EqualTol(t, 0, p.Z(), tol)

	// the target is straight ahead on +Z
	p = v.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	tolassert.EqualTol(t, 0, p.X(), tol)
	tolassert.EqualTol(t, 0, p.Y(), tol)
	tolassert.EqualTol(t, 5, p.Z(), tol)

	// world +Y is up on screen
	p = v.Mul4x1(mgl32.Vec4{0, 1, 0, 0})
	assert.Greater(t, p.Y(), float32(0))
}

func TestProjection(t *testing.T) {
	ln := &Lens{}
	ln.Defaults()
	ln.Resize(1600, 800)
	tolassert.EqualTol(t, 2, ln.Aspect, tol)

	pm := ln.Projection()
	near := pm.Mul4x1(mgl32.Vec4{0, 0, ln.Near, 1})
	far := pm.Mul4x1(mgl32.Vec4{0, 0, ln.Far, 1})
	tolassert.EqualTol(t, 0, near.Z()/near.W(), tol)
	tolassert.EqualTol(t, 1, far.Z()/far.W(), 1e-4)

	// a point on the top edge of the field of view maps to y = 1
	z := float32(10)
	top := pm.Mul4x1(mgl32.Vec4{0, z * math32.Tan(0.5*ln.FOV), z, 1})
	tolassert.EqualTol(t, 1, top.Y()/top.W(), tol)

	vp := ln.ViewProj(newOrbit())
	c := vp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	tolassert.EqualTol(t, 0, c.X()/c.W(), tol)
	tolassert.EqualTol(t, 0, c.Y()/c.W(), tol)
}
