// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the meshgen commands.
package cmd

import (
	"github.com/Imukata-aH/DirectX11Practice/base/logx"
	"github.com/spf13/cobra"
)

// Verbosity holds the logging flags shared by all commands.
type Verbosity struct {

	// V shows info messages.
	V bool

	// VV shows debug messages.
	VV bool

	// Q shows only errors.
	Q bool
}

// NewRoot returns the meshgen root command with all subcommands.
func NewRoot() *cobra.Command {
	vb := &Verbosity{}
	root := &cobra.Command{
		Use:           "meshgen",
		Short:         "Generate procedural meshes for Direct3D 11 demos",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vb.VV, vb.V, vb.Q)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&vb.V, "verbose", "v", false, "show info messages")
	pf.BoolVar(&vb.VV, "vv", false, "show debug messages")
	pf.BoolVarP(&vb.Q, "quiet", "q", false, "show only errors")

	root.AddCommand(newGenCmd(), newInfoCmd(), newSceneCmd())
	return root
}
