// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package errors

// Debug is whether to record caller stacks on wrapped errors.
var Debug = true
