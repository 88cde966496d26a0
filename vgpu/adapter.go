// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/hellotri/base/errors"
	"github.com/Masterminds/semver/v3"
	vk "github.com/goki/vulkan"
)

// AdapterTypes are the kinds of physical device
type AdapterTypes int32 //enums:enum -trim-prefix Adapter

const (
	AdapterOther AdapterTypes = iota
	AdapterIntegrated
	AdapterDiscrete
	AdapterVirtual

	// AdapterSoftware is a CPU implementation such as lavapipe or SwiftShader
	AdapterSoftware
)

// AdapterType converts the vulkan physical device type
func AdapterType(pt vk.PhysicalDeviceType) AdapterTypes {
	switch pt {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return AdapterIntegrated
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return AdapterDiscrete
	case vk.PhysicalDeviceTypeVirtualGpu:
		return AdapterVirtual
	case vk.PhysicalDeviceTypeCpu:
		return AdapterSoftware
	}
	return AdapterOther
}

// AdapterInfo describes one physical device available to the instance
type AdapterInfo struct {
	Index      int          `desc:"index in the instance enumeration order"`
	Name       string       `desc:"device name reported by the driver"`
	Type       AdapterTypes `desc:"kind of device"`
	APIVersion uint32       `desc:"packed vulkan api version supported by the device"`
	VendorID   uint32
	DeviceID   uint32
	Graphics   bool `desc:"has at least one queue family with graphics capabilities"`
}

func (ai *AdapterInfo) String() string {
	return fmt.Sprintf("%d: %s (%s, vulkan %s, %04x:%04x)", ai.Index, ai.Name, ai.Type, VersionString(ai.APIVersion), ai.VendorID, ai.DeviceID)
}

// VersionParts unpacks a vulkan packed version number
func VersionParts(v uint32) (major, minor, patch uint32) {
	return (v >> 22) & 0x7F, (v >> 12) & 0x3FF, v & 0xFFF
}

// MakeVersion packs a vulkan version number
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// VersionString returns the packed version as major.minor.patch
func VersionString(v uint32) string {
	ma, mi, pa := VersionParts(v)
	return fmt.Sprintf("%d.%d.%d", ma, mi, pa)
}

// APIVersion returns the packed version as a semantic version,
// for checking against a constraint.
func APIVersion(v uint32) *semver.Version {
	ma, mi, pa := VersionParts(v)
	return semver.New(uint64(ma), uint64(mi), uint64(pa), "", "")
}

// Satisfies returns whether the adapter can be used: it has a graphics queue,
// it is not a software adapter unless allowSoftware is set, and its
// API version meets the constraint, if non-nil. If it cannot be used,
// the reason is returned.
func (ai *AdapterInfo) Satisfies(c *semver.Constraints, allowSoftware bool) (bool, string) {
	if ai.Type == AdapterSoftware && !allowSoftware {
		return false, "software adapter"
	}
	if !ai.Graphics {
		return false, "no graphics queue"
	}
	if c != nil && !c.Check(APIVersion(ai.APIVersion)) {
		return false, "api version " + VersionString(ai.APIVersion) + " does not satisfy " + c.String()
	}
	return true, ""
}

// SelectAdapter returns the index into adapters of the first one
// that [AdapterInfo.Satisfies] the requirements, in enumeration order.
func SelectAdapter(adapters []AdapterInfo, c *semver.Constraints, allowSoftware bool) (int, error) {
	if len(adapters) == 0 {
		return -1, errors.New("vulkan error: no GPU devices found")
	}
	var skipped []string
	for i := range adapters {
		ok, why := adapters[i].Satisfies(c, allowSoftware)
		if ok {
			return i, nil
		}
		skipped = append(skipped, adapters[i].Name+": "+why)
	}
	return -1, errors.Errorf("vulkan error: no suitable GPU device; skipped %s", strings.Join(skipped, "; "))
}
