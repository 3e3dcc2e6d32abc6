// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geogen

import (
	"fmt"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/Imukata-aH/DirectX11Practice/math32"
)

var (
	// ErrInvalidParameter is matched by every error returned for
	// shape parameters outside their valid range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidMesh is matched by errors from [MeshData.Validate].
	ErrInvalidMesh = errors.New("invalid mesh")
)

// ParamError describes one rejected shape parameter.
type ParamError struct {
	Shape Shape
	Param string
	Value any
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("geogen: %v: invalid %s: %v", e.Shape, e.Param, e.Value)
}

// Unwrap returns [ErrInvalidParameter].
func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// checker collects the first invalid parameter for a shape.
type checker struct {
	shape Shape
	err   error
}

func (c *checker) fail(param string, value any) {
	if c.err == nil {
		c.err = &ParamError{Shape: c.shape, Param: param, Value: value}
	}
}

// positive requires a finite value > 0.
func (c *checker) positive(param string, v float32) {
	if !(v > 0) || math32.IsInf(v, 0) {
		c.fail(param, v)
	}
}

// atLeast requires an integer count >= min.
func (c *checker) atLeast(param string, v, min int) {
	if v < min {
		c.fail(param, v)
	}
}
