// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"runtime"
	"unsafe"
)

// DebugUtilsExt is the instance extension for naming objects
// in validation messages and GPU debuggers
const DebugUtilsExt = "VK_EXT_debug_utils"

// ObjectTypes are the vulkan object types that can be named with [Device.SetName]
type ObjectTypes uint32

// Values from VkObjectType.
const (
	ObjectFence          ObjectTypes = 7
	ObjectBuffer         ObjectTypes = 9
	ObjectPipelineLayout ObjectTypes = 17
	ObjectRenderPass     ObjectTypes = 18
	ObjectPipeline       ObjectTypes = 19
	ObjectSetLayout      ObjectTypes = 20
	ObjectCommandPool    ObjectTypes = 25
)

// structureTypeObjectNameInfo is VK_STRUCTURE_TYPE_DEBUG_UTILS_OBJECT_NAME_INFO_EXT
const structureTypeObjectNameInfo = 1000128000

// objectNameInfo has the memory layout of VkDebugUtilsObjectNameInfoEXT
type objectNameInfo struct {
	sType      uint32
	pNext      unsafe.Pointer
	objectType ObjectTypes
	handle     uint64
	name       *byte
}

func newObjectNameInfo(typ ObjectTypes, handle uint64, name []byte) *objectNameInfo {
	return &objectNameInfo{
		sType:      structureTypeObjectNameInfo,
		objectType: typ,
		handle:     handle,
		name:       &name[0],
	}
}

// Handle returns the 64 bit value of a vulkan object handle,
// for [Device.SetName].
func Handle[T any](h T) uint64 {
	if unsafe.Sizeof(h) == 4 {
		return uint64(*(*uint32)(unsafe.Pointer(&h)))
	}
	return *(*uint64)(unsafe.Pointer(&h))
}

// CanName returns whether [Device.SetName] names objects, which needs
// the GPU to be in Debug mode with [DebugUtilsExt] enabled.
func (dv *Device) CanName() bool {
	return dv.setName != 0
}

// SetName gives the object with the given type and handle a name
// that shows up in validation messages and GPU debuggers.
// It does nothing unless [Device.CanName].
func (dv *Device) SetName(typ ObjectTypes, handle uint64, name string) {
	if dv.setName == 0 || handle == 0 {
		return
	}
	cname := append([]byte(name), 0)
	info := newObjectNameInfo(typ, handle, cname)
	callSetName(dv.setName, Handle(dv.Device), unsafe.Pointer(info))
	runtime.KeepAlive(info)
	runtime.KeepAlive(cname)
}
