// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vgpu is a thin layer over Vulkan for explicit rendering:
// instance and adapter selection, devices and queues, command pools,
// fences, swapchains, descriptor layouts, buffers, shaders and pipelines.
// Every object is created and destroyed explicitly, in order.
package vgpu

import (
	"log/slog"
	"strings"
	"unsafe"

	"cogentcore.org/hellotri/base/errors"
	"github.com/Masterminds/semver/v3"
	vk "github.com/goki/vulkan"
)

// ValidationLayer is the standard Khronos validation layer
const ValidationLayer = "VK_LAYER_KHRONOS_validation"

// DebugReportExt is the instance extension for the debug report callback
const DebugReportExt = "VK_EXT_debug_report"

// SwapchainExt is the device extension needed for presenting to a surface
const SwapchainExt = "VK_KHR_swapchain"

// GPU represents the vulkan instance and the physical device
// selected from it. A logical [Device] is created from it.
type GPU struct {
	Name             string                            `desc:"name of the application, passed to the driver"`
	Instance         vk.Instance                       `desc:"handle for the vulkan instance"`
	GPU              vk.PhysicalDevice                 `desc:"handle for the selected physical device"`
	Adapter          AdapterInfo                       `desc:"description of the selected physical device"`
	Properties       vk.PhysicalDeviceProperties       `desc:"properties of the selected physical device"`
	MemoryProperties vk.PhysicalDeviceMemoryProperties `desc:"memory types and heaps of the selected physical device"`
	Limits           vk.PhysicalDeviceLimits           `desc:"limits of the selected physical device"`
	InstanceExts     []string                          `desc:"instance extensions requested, and after Config the ones enabled"`
	DeviceExts       []string                          `desc:"device extensions requested, and after Config the ones enabled"`
	ValidationLayers []string                          `desc:"validation layers enabled on the instance"`
	Debug            bool                              `desc:"enable the validation layer and log its reports"`
	AllowSoftware    bool                              `desc:"allow selecting a software (CPU) physical device"`
	MinAPIVersion    *semver.Constraints               `desc:"constraint on the api version of the physical device, if non-nil"`
	APIVersion       uint32                            `desc:"packed api version requested for the instance"`
	DebugCallback    vk.DebugReportCallback            `desc:"debug report callback, when Debug is on"`
	physDevs         []vk.PhysicalDevice
}

// NewGPU returns a new GPU with default settings, ready to Config
func NewGPU() *GPU {
	gp := &GPU{}
	gp.Defaults()
	return gp
}

// Defaults sets up default parameters
func (gp *GPU) Defaults() {
	gp.APIVersion = MakeVersion(1, 0, 0)
	PlatformDefaults(gp)
}

// AddInstanceExt adds given instance extension(s), if not already added
func (gp *GPU) AddInstanceExt(ext ...string) {
	gp.InstanceExts = addUnique(gp.InstanceExts, ext...)
}

// AddDeviceExt adds given device extension(s), if not already added
func (gp *GPU) AddDeviceExt(ext ...string) {
	gp.DeviceExts = addUnique(gp.DeviceExts, ext...)
}

func addUnique(list []string, add ...string) []string {
	for _, s := range add {
		s = strings.TrimRight(s, "\x00")
		found := false
		for _, e := range list {
			if e == s {
				found = true
				break
			}
		}
		if !found {
			list = append(list, s)
		}
	}
	return list
}

// Config creates the instance and selects the physical device.
// Any required instance extensions (e.g., from the window)
// must have been added first.
func (gp *GPU) Config(name string) error {
	if err := gp.ConfigInstance(name); err != nil {
		return err
	}
	return gp.SelectGPU()
}

// ConfigInstance creates the vulkan instance, enabling the validation
// layer, debug report callback, and debug object names if Debug is set
// and they are available.
func (gp *GPU) ConfigInstance(name string) error {
	gp.Name = name

	if gp.Debug {
		layers, err := InstanceLayers()
		if err != nil {
			return err
		}
		if HasString(layers, ValidationLayer) {
			gp.ValidationLayers = []string{ValidationLayer}
		} else {
			slog.Warn("vgpu: validation layer requested but not available", "layer", ValidationLayer)
		}
		gp.AddInstanceExt(DebugReportExt, DebugUtilsExt)
	}

	avail, err := InstanceExts()
	if err != nil {
		return err
	}
	var missing []string
	gp.InstanceExts, missing = CheckExisting(avail, gp.InstanceExts)
	if len(missing) > 0 {
		slog.Warn("vgpu: missing instance extensions", "exts", strings.Join(missing, ","))
	}
	slog.Debug("vgpu: enabling instance extensions", "exts", strings.Join(gp.InstanceExts, ","))

	ici := &vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			ApiVersion:         gp.APIVersion,
			ApplicationVersion: MakeVersion(1, 0, 0),
			PApplicationName:   SafeString(name),
			PEngineName:        "vgpu\x00",
		},
		EnabledExtensionCount:   uint32(len(gp.InstanceExts)),
		PpEnabledExtensionNames: SafeStrings(gp.InstanceExts),
		EnabledLayerCount:       uint32(len(gp.ValidationLayers)),
		PpEnabledLayerNames:     SafeStrings(gp.ValidationLayers),
	}
	if gp.Debug && HasString(gp.InstanceExts, DebugReportExt) {
		ici.PNext = unsafe.Pointer(debugReportInfo().Ref())
	}
	portabilityFlags(gp, ici)

	var instance vk.Instance
	ret := vk.CreateInstance(ici, nil, &instance)
	if err := NewError(ret); err != nil {
		return err
	}
	gp.Instance = instance
	if err := vk.InitInstance(instance); err != nil {
		return errors.Wrap(err)
	}

	if gp.Debug && HasString(gp.InstanceExts, DebugReportExt) {
		var dbg vk.DebugReportCallback
		ret := vk.CreateDebugReportCallback(gp.Instance, debugReportInfo(), nil, &dbg)
		if err := NewError(ret); err != nil {
			return err
		}
		gp.DebugCallback = dbg
		slog.Info("vgpu: debug report callback enabled")
	}
	return nil
}

// Adapters returns descriptions of all the physical devices on the instance,
// in enumeration order. ConfigInstance must have been called.
func (gp *GPU) Adapters() ([]AdapterInfo, error) {
	var count uint32
	if err := NewError(vk.EnumeratePhysicalDevices(gp.Instance, &count, nil)); err != nil {
		return nil, err
	}
	gp.physDevs = make([]vk.PhysicalDevice, count)
	if count == 0 {
		return nil, nil
	}
	if err := NewError(vk.EnumeratePhysicalDevices(gp.Instance, &count, gp.physDevs)); err != nil {
		return nil, err
	}
	infos := make([]AdapterInfo, count)
	for i, pd := range gp.physDevs {
		var props vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(pd, &props)
		props.Deref()
		infos[i] = AdapterInfo{
			Index:      i,
			Name:       vk.ToString(props.DeviceName[:]),
			Type:       AdapterType(props.DeviceType),
			APIVersion: props.ApiVersion,
			VendorID:   props.VendorID,
			DeviceID:   props.DeviceID,
			Graphics:   HasQueue(pd, vk.QueueGraphicsBit),
		}
	}
	return infos, nil
}

// SelectGPU selects the first physical device that meets the requirements,
// skipping software adapters unless AllowSoftware is set.
func (gp *GPU) SelectGPU() error {
	infos, err := gp.Adapters()
	if err != nil {
		return err
	}
	for i := range infos {
		slog.Debug("vgpu: found adapter", "adapter", infos[i].String())
	}
	idx, err := SelectAdapter(infos, gp.MinAPIVersion, gp.AllowSoftware)
	if err != nil {
		return err
	}
	gp.Adapter = infos[idx]
	gp.GPU = gp.physDevs[idx]

	vk.GetPhysicalDeviceProperties(gp.GPU, &gp.Properties)
	gp.Properties.Deref()
	gp.Limits = gp.Properties.Limits
	gp.Limits.Deref()
	vk.GetPhysicalDeviceMemoryProperties(gp.GPU, &gp.MemoryProperties)
	gp.MemoryProperties.Deref()

	avail, err := DeviceExts(gp.GPU)
	if err != nil {
		return err
	}
	var missing []string
	gp.DeviceExts, missing = CheckExisting(avail, gp.DeviceExts)
	if len(missing) > 0 {
		slog.Warn("vgpu: missing device extensions", "exts", strings.Join(missing, ","))
	}
	slog.Info("vgpu: selected adapter", "name", gp.Adapter.Name, "type", gp.Adapter.Type.String(), "api", VersionString(gp.Adapter.APIVersion))
	return nil
}

// MemoryTypes returns the property flags of each memory type
// of the selected physical device, in index order.
func (gp *GPU) MemoryTypes() []vk.MemoryPropertyFlags {
	n := int(gp.MemoryProperties.MemoryTypeCount)
	res := make([]vk.MemoryPropertyFlags, n)
	for i := 0; i < n; i++ {
		mt := gp.MemoryProperties.MemoryTypes[i]
		mt.Deref()
		res[i] = mt.PropertyFlags
	}
	return res
}

// MinUniformAlign returns the minimum offset alignment of uniform buffers
func (gp *GPU) MinUniformAlign() int {
	return int(gp.Limits.MinUniformBufferOffsetAlignment)
}

// DestroySurface destroys a window surface made for this instance.
// The surface must not be in use by a swapchain.
func (gp *GPU) DestroySurface(vs vk.Surface) {
	if vs == vk.NullSurface || gp.Instance == nil {
		return
	}
	vk.DestroySurface(gp.Instance, vs, nil)
}

// Destroy destroys the debug callback and the instance
func (gp *GPU) Destroy() {
	if gp.DebugCallback != nil {
		vk.DestroyDebugReportCallback(gp.Instance, gp.DebugCallback, nil)
		gp.DebugCallback = nil
	}
	if gp.Instance != nil {
		vk.DestroyInstance(gp.Instance, nil)
		gp.Instance = nil
	}
	gp.GPU = nil
	gp.physDevs = nil
}

func debugReportInfo() *vk.DebugReportCallbackCreateInfo {
	return &vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit | vk.DebugReportWarningBit | vk.DebugReportErrorBit),
		PfnCallback: debugReport,
	}
}

func debugReport(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType, object uint64, location uint64,
	messageCode int32, layerPrefix string, message string, userData unsafe.Pointer) vk.Bool32 {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		slog.Error("vulkan: "+message, "layer", layerPrefix, "code", messageCode)
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit|vk.DebugReportPerformanceWarningBit) != 0:
		slog.Warn("vulkan: "+message, "layer", layerPrefix, "code", messageCode)
	default:
		slog.Debug("vulkan: "+message, "layer", layerPrefix)
	}
	return vk.False
}

// HasQueue returns whether the physical device has a queue family
// with all of the given flags.
func HasQueue(pd vk.PhysicalDevice, flags vk.QueueFlagBits) bool {
	for _, qp := range QueueFamilies(pd) {
		if qp.QueueFlags&vk.QueueFlags(flags) == vk.QueueFlags(flags) {
			return true
		}
	}
	return false
}

// QueueFamilies returns the dereferenced queue family properties of the device
func QueueFamilies(pd vk.PhysicalDevice) []vk.QueueFamilyProperties {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &count, nil)
	props := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &count, props)
	for i := range props {
		props[i].Deref()
	}
	return props
}

// InstanceExts gets a list of instance extensions available on the platform.
func InstanceExts() ([]string, error) {
	var count uint32
	if err := NewError(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, err
	}
	list := make([]vk.ExtensionProperties, count)
	if err := NewError(vk.EnumerateInstanceExtensionProperties("", &count, list)); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, ext := range list {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// DeviceExts gets a list of device extensions available on the physical device.
func DeviceExts(pd vk.PhysicalDevice) ([]string, error) {
	var count uint32
	if err := NewError(vk.EnumerateDeviceExtensionProperties(pd, "", &count, nil)); err != nil {
		return nil, err
	}
	list := make([]vk.ExtensionProperties, count)
	if err := NewError(vk.EnumerateDeviceExtensionProperties(pd, "", &count, list)); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, ext := range list {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// InstanceLayers gets a list of validation layers available on the platform.
func InstanceLayers() ([]string, error) {
	var count uint32
	if err := NewError(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, err
	}
	list := make([]vk.LayerProperties, count)
	if err := NewError(vk.EnumerateInstanceLayerProperties(&count, list)); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, layer := range list {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// CheckExisting returns the names in want that are present in actual,
// and separately those that are missing.
func CheckExisting(actual, want []string) (existing, missing []string) {
	for _, w := range want {
		if HasString(actual, w) {
			existing = append(existing, w)
		} else {
			missing = append(missing, w)
		}
	}
	return
}

// HasString returns whether list contains s, ignoring any
// trailing null terminators on either side.
func HasString(list []string, s string) bool {
	s = strings.TrimRight(s, "\x00")
	for _, l := range list {
		if strings.TrimRight(l, "\x00") == s {
			return true
		}
	}
	return false
}

// SafeString returns s with a null terminator, as vulkan requires.
func SafeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// SafeStrings returns [SafeString] of each element.
func SafeStrings(list []string) []string {
	res := make([]string, len(list))
	for i, s := range list {
		res[i] = SafeString(s)
	}
	return res
}
