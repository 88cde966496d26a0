// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !darwin

package vgpu

import vk "github.com/goki/vulkan"

// PlatformDefaults adds any platform-specific extensions; none are needed here
func PlatformDefaults(gp *GPU) {}

func portabilityFlags(gp *GPU, ici *vk.InstanceCreateInfo) {}
