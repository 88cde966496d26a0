// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package vgpu

import vk "github.com/goki/vulkan"

// PlatformDefaults adds the portability extensions needed for MoltenVK
func PlatformDefaults(gp *GPU) {
	gp.AddDeviceExt("VK_KHR_portability_subset")
	gp.AddInstanceExt(vk.KhrGetPhysicalDeviceProperties2ExtensionName)
	gp.AddInstanceExt(vk.KhrPortabilityEnumerationExtensionName)
}

// enumerate portability devices (VK_INSTANCE_CREATE_ENUMERATE_PORTABILITY_BIT_KHR)
func portabilityFlags(gp *GPU, ici *vk.InstanceCreateInfo) {
	if HasString(gp.InstanceExts, vk.KhrPortabilityEnumerationExtensionName) {
		ici.Flags |= vk.InstanceCreateFlags(0x00000001)
	}
}
