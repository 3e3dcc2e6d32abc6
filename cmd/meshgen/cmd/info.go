// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/meshio"
	"github.com/Imukata-aH/DirectX11Practice/vertex"
	"github.com/spf13/cobra"
)

// InfoConfig is the configuration of the info command.
type InfoConfig struct {
	Params geogen.Params

	// YAML prints the full summary in YAML format.
	YAML bool
}

func newInfoCmd() *cobra.Command {
	c := &InfoConfig{}
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the counts and bounds of a shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Info(c, cmd.OutOrStdout())
		},
	}
	addShapeFlags(cmd.Flags(), &c.Params)
	cmd.Flags().BoolVar(&c.YAML, "yaml", false, "print the summary as YAML")
	return cmd
}

// Info generates the configured shape and prints its summary to w,
// with the vertex buffer size in each format.
func Info(c *InfoConfig, w io.Writer) error {
	p := c.Params
	p.FillDefaults()
	md, err := geogen.Generate(p)
	if err != nil {
		return err
	}
	s := meshio.NewSummary(p.Shape.String(), md)
	if c.YAML {
		return meshio.WriteSummary(s, w)
	}
	fmt.Fprintln(w, s)
	for _, f := range vertex.FormatValues() {
		fmt.Fprintf(w, "  %-14s stride %2d, %d bytes\n", f, f.Stride(), f.Stride()*s.Vertices)
	}
	return nil
}
