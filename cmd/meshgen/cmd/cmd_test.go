// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Imukata-aH/DirectX11Practice/geogen"
	"github.com/Imukata-aH/DirectX11Practice/meshio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sceneFile = filepath.Join("..", "..", "..", "scene", "testdata", "shapes.toml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRoot()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"-q"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func fileSize(t *testing.T, fn string) int {
	t.Helper()
	st, err := os.Stat(fn)
	require.NoError(t, err)
	return int(st.Size())
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "box.obj")
	sum := filepath.Join(dir, "box.yaml")
	vb := filepath.Join(dir, "box.vb")
	ib := filepath.Join(dir, "box.ib")
	_, err := run(t, "gen", "--shape", "box", "-o", obj, "--summary", sum,
		"--vbuf", vb, "--ibuf", ib, "--format", "pos-normal")
	require.NoError(t, err)

	s, err := meshio.OpenSummary(sum)
	require.NoError(t, err)
	assert.Equal(t, "box", s.Name)
	assert.Equal(t, 24, s.Vertices)
	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, s.Max)
	assert.Equal(t, 24*24, fileSize(t, vb))
	assert.Equal(t, 36*4, fileSize(t, ib))
	assert.Greater(t, fileSize(t, obj), 0)
}

func TestGenErrors(t *testing.T) {
	_, err := run(t, "gen", "--shape", "box")
	assert.Error(t, err)

	_, err = run(t, "gen", "--shape", "cone", "-o", filepath.Join(t.TempDir(), "x.obj"))
	assert.Error(t, err)

	_, err = run(t, "gen", "--shape", "sphere", "--radius", "-1", "-o", filepath.Join(t.TempDir(), "x.obj"))
	assert.ErrorIs(t, err, geogen.ErrInvalidParameter)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "--shape", "geosphere", "--subdivisions", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "geosphere: 12 vertices, 60 indices, 20 triangles")
	assert.Contains(t, out, "full           stride 48, 576 bytes")

	out, err = run(t, "info", "--shape", "grid", "--rows", "3", "--cols", "4", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: grid\n")
	assert.Contains(t, out, "vertices: 12\n")
}

func TestScene(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "shapes.obj")
	vb := filepath.Join(dir, "shapes.vb")
	sum := filepath.Join(dir, "shapes.yaml")
	_, err := run(t, "scene", sceneFile, "--bake", "-o", obj, "--vbuf", vb, "--format", "pos-color", "--summary", sum)
	require.NoError(t, err)

	s, err := meshio.OpenSummary(sum)
	require.NoError(t, err)
	assert.Equal(t, "shapes", s.Name)
	assert.Equal(t, s.Vertices*28, fileSize(t, vb))

	_, err = run(t, "scene", filepath.Join(dir, "missing.toml"), "-o", obj)
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	WatchLag = 10 * time.Millisecond
	fn := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(fn, []byte("# empty\n"), 0666))

	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func() error {
			updates <- struct{}{}
			return nil
		})
	}()

	require.Eventually(t, func() bool {
		// keep writing until the watcher is up and sees a change
		os.WriteFile(fn, []byte("# changed\n"), 0666)
		select {
		case <-updates:
			return true
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
