// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lighting evaluates the Phong lighting model of the demo
// shaders on the CPU, for baking per-vertex colors and for testing
// the light setups.
package lighting

import "github.com/Imukata-aH/DirectX11Practice/math32"

// Color is an RGBA color, in [math32.Vector4] X, Y, Z, W order.
type Color = math32.Vector4

// DirectionalLight is a light at infinity shining along Direction.
type DirectionalLight struct {
	Ambient   Color          `toml:"ambient"`
	Diffuse   Color          `toml:"diffuse"`
	Specular  Color          `toml:"specular"`
	Direction math32.Vector3 `toml:"direction"`
}

// PointLight shines in all directions from Position, reaching
// no further than Range.
type PointLight struct {
	Ambient  Color          `toml:"ambient"`
	Diffuse  Color          `toml:"diffuse"`
	Specular Color          `toml:"specular"`
	Position math32.Vector3 `toml:"position"`
	Range    float32        `toml:"range"`

	// Attenuation holds the constant, linear and quadratic
	// coefficients a0, a1, a2 of 1 / (a0 + a1 d + a2 d^2).
	Attenuation math32.Vector3 `toml:"attenuation"`
}

// SpotLight is a [PointLight] that is brightest along Direction,
// falling off as the cosine to the power Spot.
type SpotLight struct {
	Ambient     Color          `toml:"ambient"`
	Diffuse     Color          `toml:"diffuse"`
	Specular    Color          `toml:"specular"`
	Position    math32.Vector3 `toml:"position"`
	Range       float32        `toml:"range"`
	Direction   math32.Vector3 `toml:"direction"`
	Spot        float32        `toml:"spot"`
	Attenuation math32.Vector3 `toml:"attenuation"`
}

// Material is the surface response to light. Specular W is the
// specular power.
type Material struct {
	Ambient  Color `toml:"ambient"`
	Diffuse  Color `toml:"diffuse"`
	Specular Color `toml:"specular"`
	Reflect  Color `toml:"reflect"`
}

// Defaults sets the green material of the lighting demo model.
func (m *Material) Defaults() {
	m.Ambient = math32.Vec4(0.48, 0.77, 0.46, 1)
	m.Diffuse = math32.Vec4(0.48, 0.77, 0.46, 1)
	m.Specular = math32.Vec4(0.2, 0.2, 0.2, 16)
}

// reflect returns the reflection of incident direction i about n.
func reflect(i, n math32.Vector3) math32.Vector3 {
	return i.Sub(n.MulScalar(2 * n.Dot(i)))
}

// phong returns the diffuse and specular terms for unit vector
// lightVec from the surface to the light.
func phong(lightVec, normal, toEye math32.Vector3, mat *Material, diff, spec Color) (diffuse, specular Color) {
	df := lightVec.Dot(normal)
	if df <= 0 {
		return
	}
	v := reflect(lightVec.Negate(), normal)
	sf := math32.Pow(math32.Max(v.Dot(toEye), 0), mat.Specular.W)
	specular = mat.Specular.Mul(spec).MulScalar(sf)
	diffuse = mat.Diffuse.Mul(diff).MulScalar(df)
	return
}

// ComputeDirectional returns the ambient, diffuse and specular light
// reflected towards the eye at a surface with the given unit normal,
// where toEye is the unit vector from the surface to the eye.
func ComputeDirectional(mat *Material, l *DirectionalLight, normal, toEye math32.Vector3) (ambient, diffuse, specular Color) {
	ambient = mat.Ambient.Mul(l.Ambient)
	diffuse, specular = phong(l.Direction.Negate(), normal, toEye, mat, l.Diffuse, l.Specular)
	return
}

// attenuation returns 1 / (a0 + a1 d + a2 d^2).
func attenuation(att math32.Vector3, d float32) float32 {
	return 1 / att.Dot(math32.Vec3(1, d, d*d))
}

// ComputePoint is like [ComputeDirectional] for a point light and a
// surface at pos. Surfaces beyond the light range get nothing.
func ComputePoint(mat *Material, l *PointLight, pos, normal, toEye math32.Vector3) (ambient, diffuse, specular Color) {
	lightVec := l.Position.Sub(pos)
	d := lightVec.Length()
	if d > l.Range {
		return
	}
	lightVec = lightVec.DivScalar(d)
	ambient = mat.Ambient.Mul(l.Ambient)
	diffuse, specular = phong(lightVec, normal, toEye, mat, l.Diffuse, l.Specular)
	att := attenuation(l.Attenuation, d)
	diffuse = diffuse.MulScalar(att)
	specular = specular.MulScalar(att)
	return
}

// ComputeSpot is like [ComputePoint] for a spot light, with all three
// terms scaled by the spot factor.
func ComputeSpot(mat *Material, l *SpotLight, pos, normal, toEye math32.Vector3) (ambient, diffuse, specular Color) {
	lightVec := l.Position.Sub(pos)
	d := lightVec.Length()
	if d > l.Range {
		return
	}
	lightVec = lightVec.DivScalar(d)
	ambient = mat.Ambient.Mul(l.Ambient)
	diffuse, specular = phong(lightVec, normal, toEye, mat, l.Diffuse, l.Specular)
	spot := math32.Pow(math32.Max(lightVec.Negate().Dot(l.Direction), 0), l.Spot)
	att := spot * attenuation(l.Attenuation, d)
	ambient = ambient.MulScalar(spot)
	diffuse = diffuse.MulScalar(att)
	specular = specular.MulScalar(att)
	return
}
