// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func TestEqual(t *testing.T) {
	Equal(t, 3.1415, 3.1416)
	EqualTol(t, float32(1), float32(1.05), 0.1)
	EqualTolSlice(t, []float32{1, 2}, []float32{1.0001, 1.9999}, 0.001)

	r := &recorder{}
	assert.False(t, EqualTol(r, 1.0, 2.0, 0.5))
	assert.True(t, r.failed)

	r = &recorder{}
	assert.False(t, EqualTolSlice(r, []float64{1}, []float64{1, 2}, 0.5))
	assert.True(t, r.failed)
}
