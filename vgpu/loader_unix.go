// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd

package vgpu

import (
	"runtime"
	"sync"
	"unsafe"

	"cogentcore.org/hellotri/base/errors"
	"github.com/ebitengine/purego"
	vk "github.com/goki/vulkan"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// vulkanLibs returns the names of the system Vulkan loader library,
// in the order they are tried.
func vulkanLibs() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libvulkan.1.dylib", "libvulkan.dylib", "libMoltenVK.dylib"}
	}
	return []string{"libvulkan.so.1", "libvulkan.so"}
}

// LoadVulkan initializes vulkan without a window, for offscreen use,
// by resolving vkGetInstanceProcAddr from the system Vulkan library.
// Only the first call does anything.
func LoadVulkan() error {
	loadOnce.Do(func() {
		loadErr = loadVulkan()
	})
	return loadErr
}

// openVulkanLib opens the system Vulkan library.
// The loader is reference counted so repeated opens share one handle.
func openVulkanLib() (uintptr, error) {
	var errs []error
	for _, name := range vulkanLibs() {
		l, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return l, nil
		}
		errs = append(errs, err)
	}
	return 0, errors.Errorf("vgpu: could not load the Vulkan library: %w", errors.Join(errs...))
}

func loadVulkan() error {
	lib, err := openVulkanLib()
	if err != nil {
		return err
	}
	sym, err := purego.Dlsym(lib, "vkGetInstanceProcAddr")
	if err != nil {
		return errors.Wrap(err)
	}
	vk.SetGetInstanceProcAddr(*(*unsafe.Pointer)(unsafe.Pointer(&sym)))
	return errors.Wrap(vk.Init())
}

// objectNameFunc returns vkSetDebugUtilsObjectNameEXT for the instance,
// or 0 if the loader does not provide it.
func objectNameFunc(inst vk.Instance) uintptr {
	if inst == nil {
		return 0
	}
	lib, err := openVulkanLib()
	if err != nil {
		return 0
	}
	gipa, err := purego.Dlsym(lib, "vkGetInstanceProcAddr")
	if err != nil {
		return 0
	}
	name := append([]byte("vkSetDebugUtilsObjectNameEXT"), 0)
	fn, _, _ := purego.SyscallN(gipa, uintptr(Handle(inst)), uintptr(unsafe.Pointer(&name[0])))
	runtime.KeepAlive(name)
	return fn
}

func callSetName(fn uintptr, device uint64, info unsafe.Pointer) {
	purego.SyscallN(fn, uintptr(device), uintptr(info))
}
