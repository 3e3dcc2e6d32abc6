// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"
	"os"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/math32"
	"github.com/Imukata-aH/DirectX11Practice/meshio"
	"github.com/Imukata-aH/DirectX11Practice/vertex"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Output holds the output file options shared by gen and scene.
type Output struct {

	// OBJ is the Wavefront OBJ file to write.
	OBJ string

	// Summary is the YAML summary file to write.
	Summary string

	// VBuf and IBuf are raw little-endian vertex and index buffer files.
	VBuf string
	IBuf string

	// Format is the vertex format of VBuf.
	Format vertex.Format

	// RightHanded writes the OBJ for right-handed consumers.
	RightHanded bool
}

// GenConfig is the configuration of the gen command.
type GenConfig struct {
	Params geogen.Params
	Output Output
}

func addShapeFlags(fs *pflag.FlagSet, p *geogen.Params) {
	p.Shape = geogen.Sphere
	fs.Var(&p.Shape, "shape", "shape to generate: box, sphere, geosphere, cylinder or grid")
	fs.Float32Var(&p.Width, "width", 0, "box or grid width")
	fs.Float32Var(&p.Height, "height", 0, "box or cylinder height")
	fs.Float32Var(&p.Depth, "depth", 0, "box or grid depth")
	fs.Float32Var(&p.Radius, "radius", 0, "sphere or geosphere radius")
	fs.Float32Var(&p.BottomRadius, "bottom-radius", 0, "cylinder bottom radius")
	fs.Float32Var(&p.TopRadius, "top-radius", 0, "cylinder top radius")
	fs.IntVar(&p.Slices, "slices", 0, "sphere or cylinder slices")
	fs.IntVar(&p.Stacks, "stacks", 0, "sphere or cylinder stacks")
	fs.IntVar(&p.Subdivisions, "subdivisions", 0, "geosphere subdivision level")
	fs.IntVar(&p.Rows, "rows", 0, "grid rows")
	fs.IntVar(&p.Cols, "cols", 0, "grid columns")
}

func addOutputFlags(fs *pflag.FlagSet, o *Output) {
	o.Format = vertex.Full
	fs.StringVarP(&o.OBJ, "output", "o", "", "Wavefront OBJ file to write")
	fs.StringVar(&o.Summary, "summary", "", "YAML summary file to write")
	fs.StringVar(&o.VBuf, "vbuf", "", "raw vertex buffer file to write")
	fs.StringVar(&o.IBuf, "ibuf", "", "raw 32 bit index buffer file to write")
	fs.Var(&o.Format, "format", "vertex buffer format: pos-color, pos-normal, pos-normal-tex or full")
	fs.BoolVar(&o.RightHanded, "right-handed", false, "write the OBJ file for a right-handed coordinate system")
}

func newGenCmd() *cobra.Command {
	c := &GenConfig{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a single shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Gen(c)
		},
	}
	addShapeFlags(cmd.Flags(), &c.Params)
	addOutputFlags(cmd.Flags(), &c.Output)
	return cmd
}

// Gen generates the configured shape and writes the configured outputs.
func Gen(c *GenConfig) error {
	p := c.Params
	p.FillDefaults()
	md, err := geogen.Generate(p)
	if err != nil {
		return err
	}
	return c.Output.write(p.Shape.String(), md, nil)
}

// write writes md to all the configured outputs, with optional
// per-vertex colors.
func (o *Output) write(name string, md *geogen.MeshData, clrs []math32.Vector4) error {
	if o.OBJ == "" && o.Summary == "" && o.VBuf == "" && o.IBuf == "" {
		return errors.New("no output: use -o, --summary, --vbuf or --ibuf")
	}
	if o.OBJ != "" {
		err := meshio.SaveOBJ(o.OBJ, md, &meshio.OBJOptions{Name: name, Colors: clrs, RightHanded: o.RightHanded})
		if err != nil {
			return err
		}
		slog.Info("wrote obj", "file", o.OBJ, "vertices", len(md.Vertices), "triangles", md.NumTriangles())
	}
	if o.Summary != "" {
		if err := meshio.SaveSummary(meshio.NewSummary(name, md), o.Summary); err != nil {
			return err
		}
		slog.Info("wrote summary", "file", o.Summary)
	}
	if o.VBuf != "" {
		var cf vertex.ColorFunc
		if clrs != nil {
			cf = vertex.Colors(clrs)
		}
		b, err := vertex.Pack(md, o.Format, cf)
		if err != nil {
			return err
		}
		if err := os.WriteFile(o.VBuf, b, 0666); err != nil {
			return errors.Wrap(err)
		}
		slog.Info("wrote vertex buffer", "file", o.VBuf, "format", o.Format, "stride", o.Format.Stride(), "bytes", len(b))
	}
	if o.IBuf != "" {
		b := vertex.PackIndices(md.Indices)
		if err := os.WriteFile(o.IBuf, b, 0666); err != nil {
			return errors.Wrap(err)
		}
		slog.Info("wrote index buffer", "file", o.IBuf, "bytes", len(b))
	}
	return nil
}
