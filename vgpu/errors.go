// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"fmt"

	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// IsError returns whether the given result is not a success.
// Suboptimal and other positive status codes count as errors here;
// callers that accept them check for them first.
func IsError(ret vk.Result) bool {
	return ret != vk.Success
}

// NewError returns an error for the given result, or nil
// if it is [vk.Success]. The error carries a stack trace.
func NewError(ret vk.Result) error {
	if ret == vk.Success {
		return nil
	}
	return errors.Wrap(fmt.Errorf("vulkan error: %s (%d)", resultString(ret), ret))
}

func resultString(ret vk.Result) string {
	if err := vk.Error(ret); err != nil {
		return err.Error()
	}
	switch ret {
	case vk.Timeout:
		return "timeout"
	case vk.NotReady:
		return "not ready"
	case vk.Suboptimal:
		return "suboptimal"
	}
	return "status"
}

// IfPanic calls the given finalizers and then panics if err is non-nil.
func IfPanic(err error, finalizers ...func()) {
	if err != nil {
		for _, fn := range finalizers {
			fn()
		}
		panic(err)
	}
}

// CheckErr recovers from a panic and stores it in err.
// It must be called directly by defer.
func CheckErr(err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(error); ok {
			*err = e
			return
		}
		*err = fmt.Errorf("%+v", v)
	}
}
