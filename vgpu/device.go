// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// Device holds Device and associated Queue info
type Device struct {
	Device     vk.Device `desc:"logical device"`
	QueueIndex uint32    `desc:"queue family index for device"`
	Queue      vk.Queue  `desc:"queue for device, used for both graphics and present"`

	// vkSetDebugUtilsObjectNameEXT, if available
	setName uintptr
}

// Init initializes a device based on QueueFlagBits
func (dv *Device) Init(gp *GPU, flags vk.QueueFlagBits) error {
	if err := dv.FindQueue(gp, flags); err != nil {
		return err
	}
	return dv.MakeDevice(gp)
}

// InitSurface initializes a device with a queue that supports
// graphics and presenting to the given surface.
func (dv *Device) InitSurface(gp *GPU, vs vk.Surface) error {
	if err := dv.FindPresentQueue(gp, vs); err != nil {
		return err
	}
	return dv.MakeDevice(gp)
}

// FindQueue finds queue for given flag bits, sets in QueueIndex
// returns error if not found.
func (dv *Device) FindQueue(gp *GPU, flags vk.QueueFlagBits) error {
	props := QueueFamilies(gp.GPU)
	if len(props) == 0 {
		return errors.New("vulkan error: no queue families found on GPU")
	}
	required := vk.QueueFlags(flags)
	for i, qp := range props {
		if qp.QueueFlags&required == required {
			dv.QueueIndex = uint32(i)
			return nil
		}
	}
	return errors.New("vulkan error: could not find queue with required capabilities")
}

// FindPresentQueue finds a queue family with graphics capabilities that
// can also present to the surface. A separate present queue is not supported.
func (dv *Device) FindPresentQueue(gp *GPU, vs vk.Surface) error {
	props := QueueFamilies(gp.GPU)
	if len(props) == 0 {
		return errors.New("vulkan error: no queue families found on GPU")
	}
	required := vk.QueueFlags(vk.QueueGraphicsBit)
	for i, qp := range props {
		if qp.QueueFlags&required == 0 {
			continue
		}
		var supportsPresent vk.Bool32
		vk.GetPhysicalDeviceSurfaceSupport(gp.GPU, uint32(i), vs, &supportsPresent)
		if supportsPresent.B() {
			dv.QueueIndex = uint32(i)
			return nil
		}
	}
	return errors.New("vulkan error: could not find queue with graphics and present capabilities")
}

// MakeDevice makes the logical device and gets its queue, based on QueueIndex
func (dv *Device) MakeDevice(gp *GPU) error {
	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: dv.QueueIndex,
		QueueCount:       1,
		PQueuePriorities: []float32{1.0},
	}}

	var device vk.Device
	ret := vk.CreateDevice(gp.GPU, &vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(gp.DeviceExts)),
		PpEnabledExtensionNames: SafeStrings(gp.DeviceExts),
		EnabledLayerCount:       uint32(len(gp.ValidationLayers)),
		PpEnabledLayerNames:     SafeStrings(gp.ValidationLayers),
	}, nil, &device)
	if err := NewError(ret); err != nil {
		return err
	}
	dv.Device = device

	var queue vk.Queue
	vk.GetDeviceQueue(dv.Device, dv.QueueIndex, 0, &queue)
	dv.Queue = queue
	if gp.Debug && HasString(gp.InstanceExts, DebugUtilsExt) {
		dv.setName = objectNameFunc(gp.Instance)
	}
	return nil
}

// WaitIdle waits until the device has finished all submitted work
func (dv *Device) WaitIdle() {
	if dv.Device == nil {
		return
	}
	vk.DeviceWaitIdle(dv.Device)
}

// Destroy waits for the device to be idle and destroys it
func (dv *Device) Destroy() {
	if dv.Device == nil {
		return
	}
	vk.DeviceWaitIdle(dv.Device)
	vk.DestroyDevice(dv.Device, nil)
	dv.Device = nil
	dv.setName = 0
	dv.Queue = nil
}
