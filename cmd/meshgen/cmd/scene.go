// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Imukata-aH/DirectX11Practice/scene"
	"github.com/spf13/cobra"
)

// SceneConfig is the configuration of the scene command.
type SceneConfig struct {

	// File is the TOML scene file.
	File string

	Output Output

	// Bake writes vertex colors lit by the scene lights.
	Bake bool

	// Watch rebuilds the scene each time File changes.
	Watch bool
}

func newSceneCmd() *cobra.Command {
	c := &SceneConfig{}
	cmd := &cobra.Command{
		Use:   "scene <file.toml>",
		Short: "Build a scene file into one world space mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.File = args[0]
			return Scene(cmd.Context(), c)
		},
	}
	addOutputFlags(cmd.Flags(), &c.Output)
	cmd.Flags().BoolVar(&c.Bake, "bake", false, "bake the scene lighting into vertex colors")
	cmd.Flags().BoolVar(&c.Watch, "watch", false, "rebuild each time the scene file changes, until interrupted")
	return cmd
}

// Scene builds the configured scene and writes its outputs, then
// rebuilds on each change of the scene file if c.Watch is set.
func Scene(ctx context.Context, c *SceneConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := buildScene(ctx, c); err != nil {
		return err
	}
	if !c.Watch {
		return nil
	}
	return Watch(ctx, c.File, func() error {
		return buildScene(ctx, c)
	})
}

func buildScene(ctx context.Context, c *SceneConfig) error {
	sc, err := scene.Open(c.File)
	if err != nil {
		return err
	}
	bt, err := sc.Build(ctx)
	if err != nil {
		return err
	}
	md, clrs := bt.World(&sc.Material, c.Bake)
	name := strings.TrimSuffix(filepath.Base(c.File), filepath.Ext(c.File))
	slog.Debug("scene built", "file", c.File, "objects", len(bt.Draws), "vertices", len(md.Vertices))
	return c.Output.write(name, md, clrs)
}
