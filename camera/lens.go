// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lens holds the perspective projection parameters.
type Lens struct {

	// FOV is the vertical field of view in radians.
	FOV float32 `toml:"fov"`

	// Aspect is the width / height ratio of the viewport.
	Aspect float32 `toml:"aspect"`

	// Near and Far are the clip plane distances.
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
}

// Defaults sets a 45 degree lens with clip planes at 1 and 1000.
func (ln *Lens) Defaults() {
	ln.FOV = 0.25 * math32.Pi
	ln.Aspect = 800.0 / 600.0
	ln.Near = 1
	ln.Far = 1000
}

// Resize updates the aspect ratio for a viewport of the given size.
func (ln *Lens) Resize(width, height int) {
	if height > 0 {
		ln.Aspect = float32(width) / float32(height)
	}
}

// Projection returns the left-handed perspective matrix, mapping
// view space z in [Near, Far] to depth in [0, 1].
func (ln *Lens) Projection() mgl32.Mat4 {
	ys := 1 / math32.Tan(0.5*ln.FOV)
	xs := ys / ln.Aspect
	q := ln.Far / (ln.Far - ln.Near)
	return mgl32.Mat4{
		xs, 0, 0, 0,
		0, ys, 0, 0,
		0, 0, q, 1,
		0, 0, -q * ln.Near, 0,
	}
}

// ViewProj returns Projection * View for the given camera.
func (ln *Lens) ViewProj(o *Orbit) mgl32.Mat4 {
	return ln.Projection().Mul4(o.View())
}
