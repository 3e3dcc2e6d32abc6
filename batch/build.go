// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"context"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"golang.org/x/sync/errgroup"
)

// Item names a shape to generate into a batch.
type Item struct {
	Name   string
	Params geogen.Params
}

// Build generates all items concurrently and adds them to a new batch
// in the order given, so the result does not depend on scheduling.
// The first error cancels the remaining work and no batch is returned.
func Build(ctx context.Context, items []Item) (*Batch, error) {
	meshes := make([]*geogen.MeshData, len(items))
	g, ctx := errgroup.WithContext(ctx)
	for i, it := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			md, err := geogen.Generate(it.Params)
			if err != nil {
				return errors.Errorf("batch: item %q: %w", it.Name, err)
			}
			meshes[i] = md
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := &Batch{}
	for i, it := range items {
		if _, err := b.Add(it.Name, meshes[i]); err != nil {
			return nil, err
		}
	}
	return b, nil
}
