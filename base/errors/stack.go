// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// CallerInfo returns the caller frames of the function that called
// [Wrap], [New] or [Errorf], formatted as "file:line", innermost first.
func CallerInfo() []string {
	callers := make([]uintptr, 10)
	n := runtime.Callers(3, callers)
	// Return now to avoid processing the zero Frame that would
	// otherwise be returned by frames.Next below.
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(callers[:n])
	res := []string{}
	for {
		frame, more := frames.Next()
		// Stop unwinding when we enter package runtime or test,
		// as we only care about errors in the program.
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			break
		}
		if strings.HasSuffix(filepath.Dir(frame.File), "base/errors") {
			if !more {
				break
			}
			continue
		}
		res = append(res, fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line))
		if !more {
			break
		}
	}
	return res
}
