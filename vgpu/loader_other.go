// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd)

package vgpu

import (
	"unsafe"

	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// LoadVulkan is not supported on this platform: use Init with a window
func LoadVulkan() error {
	return errors.New("vgpu: loading Vulkan without a window is not supported on this platform")
}

func objectNameFunc(inst vk.Instance) uintptr { return 0 }

func callSetName(fn uintptr, device uint64, info unsafe.Pointer) {}
