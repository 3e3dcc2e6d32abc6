// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Object is one instance of a batch mesh placed in the world.
type Object struct {

	// Mesh is the name of the [Submesh] drawn for this object.
	Mesh string

	// Position is the world space translation.
	Position math32.Vector3

	// Rotation is the rotation in radians about X, then Y, then Z.
	Rotation math32.Vector3

	// Scale per axis; a zero scale is set to 1 by Defaults.
	Scale math32.Vector3
}

// Defaults sets a unit Scale if it has not been set.
func (ob *Object) Defaults() {
	if ob.Scale.IsNil() {
		ob.Scale.Set(1, 1, 1)
	}
}

// World returns the model to world matrix T * R * S, for column vectors.
func (ob *Object) World() mgl32.Mat4 {
	sc := ob.Scale
	if sc.IsNil() {
		sc = math32.Vector3Scalar(1)
	}
	s := mgl32.Scale3D(sc.X, sc.Y, sc.Z)
	r := mgl32.HomogRotate3DZ(ob.Rotation.Z).Mul4(mgl32.HomogRotate3DY(ob.Rotation.Y)).Mul4(mgl32.HomogRotate3DX(ob.Rotation.X))
	t := mgl32.Translate3D(ob.Position.X, ob.Position.Y, ob.Position.Z)
	return t.Mul4(r).Mul4(s)
}

// Draw is one draw call: an object with the draw range of its mesh.
type Draw struct {
	Object  Object
	Submesh Submesh
	World   mgl32.Mat4
}

// DrawList resolves each object against the batch, in order.
// It fails if an object names a mesh that is not in the batch.
func (b *Batch) DrawList(objs []Object) ([]Draw, error) {
	draws := make([]Draw, 0, len(objs))
	for _, ob := range objs {
		sm, ok := b.Lookup(ob.Mesh)
		if !ok {
			return nil, errors.Errorf("batch: object refers to unknown mesh %q", ob.Mesh)
		}
		ob.Defaults()
		draws = append(draws, Draw{Object: ob, Submesh: sm, World: ob.World()})
	}
	return draws, nil
}

// TransformPoint applies m to point p.
func TransformPoint(m mgl32.Mat4, p math32.Vector3) math32.Vector3 {
	v := m.Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})
	return math32.Vec3(v.X(), v.Y(), v.Z())
}

// WorldBBox returns the world space bounding box of a draw, spanning
// the transformed corners of the submesh box.
func (d *Draw) WorldBBox() math32.Box3 {
	bb := math32.B3Empty()
	for _, c := range d.Submesh.BBox.Corners() {
		bb.ExpandByPoint(TransformPoint(d.World, c))
	}
	return bb
}
