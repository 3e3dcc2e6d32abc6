// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch concatenates generated meshes into one shared vertex
// and index buffer, recording where each mesh ended up so that it can
// be drawn on its own.
package batch

import (
	"log/slog"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/math32"
)

// Submesh is the draw range of one mesh within a [Batch].
type Submesh struct {

	// Name of the mesh, unique within the batch.
	Name string

	// BaseVertex is the index of the first vertex of the mesh.
	// Indices are stored already offset by it.
	BaseVertex int

	// StartIndex is the position of the first index of the mesh.
	StartIndex int

	// IndexCount is the number of indices of the mesh.
	IndexCount int

	// VertexCount is the number of vertices of the mesh.
	VertexCount int

	// BBox is the bounding box of the mesh in model space.
	BBox math32.Box3
}

// Batch accumulates meshes in one [geogen.MeshData].
// The zero value is an empty batch ready to use.
type Batch struct {

	// Mesh holds the vertices and indices of all meshes added so far.
	Mesh geogen.MeshData

	// Submeshes are the draw ranges, in the order added.
	Submeshes []Submesh

	// BBox is the bounding box of all meshes.
	BBox math32.Box3

	names map[string]int
}

// Add appends md to the batch under the given name and returns its
// draw range. Names must be unique.
func (b *Batch) Add(name string, md *geogen.MeshData) (Submesh, error) {
	if _, has := b.names[name]; has {
		return Submesh{}, errors.Errorf("batch: duplicate mesh name %q", name)
	}
	if err := md.Validate(); err != nil {
		return Submesh{}, errors.Errorf("batch: mesh %q: %w", name, err)
	}
	if b.names == nil {
		b.names = make(map[string]int)
		b.BBox.SetEmpty()
	}
	nv, ni := md.N()
	sm := Submesh{
		Name:        name,
		BaseVertex:  len(b.Mesh.Vertices),
		StartIndex:  len(b.Mesh.Indices),
		IndexCount:  ni,
		VertexCount: nv,
		BBox:        md.BBox(),
	}
	b.Mesh.Append(md)
	b.BBox.ExpandByBox(sm.BBox)
	b.names[name] = len(b.Submeshes)
	b.Submeshes = append(b.Submeshes, sm)
	slog.Debug("batch: added mesh", "name", name, "baseVertex", sm.BaseVertex, "startIndex", sm.StartIndex, "indices", ni)
	return sm, nil
}

// Lookup returns the draw range of the named mesh.
func (b *Batch) Lookup(name string) (Submesh, bool) {
	i, ok := b.names[name]
	if !ok {
		return Submesh{}, false
	}
	return b.Submeshes[i], true
}

// Indices returns the indices of the named mesh within the shared
// index buffer, offset by its BaseVertex.
func (b *Batch) Indices(name string) []uint32 {
	sm, ok := b.Lookup(name)
	if !ok {
		return nil
	}
	return b.Mesh.Indices[sm.StartIndex : sm.StartIndex+sm.IndexCount]
}
