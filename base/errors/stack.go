// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"path"
	"runtime"
	"strconv"
	"strings"
)

// Stack returns the stack trace starting at the caller of Stack,
// as a slice of frames.
func Stack() []runtime.Frame {
	return frames(3)
}

func frames(skip int) []runtime.Frame {
	pcs := make([]uintptr, 10)
	n := runtime.Callers(skip, pcs)
	// Return now to avoid processing the zero Frame that would
	// otherwise be returned by frames.Next below.
	if n == 0 {
		return nil
	}

	fs := runtime.CallersFrames(pcs[:n])
	res := []runtime.Frame{}
	for {
		frame, more := fs.Next()
		// Stop unwinding when we enter package runtime or test,
		// as we only care about errors in the program.
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			break
		}
		res = append(res, frame)
		if !more {
			break
		}
	}
	return res
}

// callers returns the short form of the stack above the
// exported constructor that called it: Wrap, New, or Errorf.
func callers() []string {
	fs := frames(4)
	res := make([]string, 0, len(fs))
	for _, f := range fs {
		fn := path.Base(f.Function)
		switch fn {
		case "errors.Wrap", "errors.New", "errors.Errorf":
			continue
		}
		res = append(res, fn+":"+strconv.Itoa(f.Line))
	}
	return res
}
