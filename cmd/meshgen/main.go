// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshgen generates procedural meshes and scenes, writing
// them as Wavefront OBJ files, raw vertex buffers and YAML summaries.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/cmd/meshgen/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.NewRoot().ExecuteContext(ctx)
	stop()
	if err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
