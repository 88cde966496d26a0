// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"image"

	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// PreferredFormats are the surface formats chosen first, in order,
// after any explicitly requested one.
var PreferredFormats = []vk.Format{vk.FormatB8g8r8a8Unorm, vk.FormatR8g8b8a8Unorm}

// ChooseSurfaceFormat selects from the formats supported by a surface:
// want if supported, else one of [PreferredFormats], all with the
// sRGB nonlinear color space, else the first one. A single undefined
// format means that any format can be used, so want is used.
// The formats must already be dereferenced.
func ChooseSurfaceFormat(formats []vk.SurfaceFormat, want vk.Format) (vk.SurfaceFormat, error) {
	if len(formats) == 0 {
		return vk.SurfaceFormat{}, errors.New("vulkan error: surface has no pixel formats")
	}
	if len(formats) == 1 && formats[0].Format == vk.FormatUndefined {
		return vk.SurfaceFormat{Format: want, ColorSpace: formats[0].ColorSpace}, nil
	}
	prefs := append([]vk.Format{want}, PreferredFormats...)
	for _, pf := range prefs {
		for _, sf := range formats {
			if sf.Format == pf && sf.ColorSpace == vk.ColorSpaceSrgbNonlinear {
				return sf, nil
			}
		}
	}
	return formats[0], nil
}

// ChoosePresentMode returns FIFO, which is always supported, if vsync is on.
// Otherwise it prefers mailbox, then immediate, falling back on FIFO.
func ChoosePresentMode(modes []vk.PresentMode, vsync bool) vk.PresentMode {
	if vsync {
		return vk.PresentModeFifo
	}
	has := func(m vk.PresentMode) bool {
		for _, pm := range modes {
			if pm == m {
				return true
			}
		}
		return false
	}
	switch {
	case has(vk.PresentModeMailbox):
		return vk.PresentModeMailbox
	case has(vk.PresentModeImmediate):
		return vk.PresentModeImmediate
	}
	return vk.PresentModeFifo
}

// ChooseExtent returns the swapchain image size: the surface's current
// extent, unless it is the special value 0xFFFFFFFF meaning the size
// is set by the swapchain, in which case want is clamped to min and max.
func ChooseExtent(current, min, max vk.Extent2D, want image.Point) vk.Extent2D {
	if current.Width != vk.MaxUint32 {
		return current
	}
	return vk.Extent2D{
		Width:  clamp32(uint32(want.X), min.Width, max.Width),
		Height: clamp32(uint32(want.Y), min.Height, max.Height),
	}
}

// ChooseImageCount returns the number of swapchain images to request:
// desired, but at least min, and at most max unless max is 0 (no limit).
func ChooseImageCount(min, max uint32, desired int) uint32 {
	n := uint32(desired)
	if n < min {
		n = min
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}

// ChooseCompositeAlpha returns the first supported of opaque,
// pre-multiplied, post-multiplied, or inherit alpha compositing.
func ChooseCompositeAlpha(supported vk.CompositeAlphaFlags) vk.CompositeAlphaFlagBits {
	for _, ca := range []vk.CompositeAlphaFlagBits{
		vk.CompositeAlphaOpaqueBit,
		vk.CompositeAlphaPreMultipliedBit,
		vk.CompositeAlphaPostMultipliedBit,
		vk.CompositeAlphaInheritBit,
	} {
		if supported&vk.CompositeAlphaFlags(ca) != 0 {
			return ca
		}
	}
	return vk.CompositeAlphaOpaqueBit
}

func clamp32(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
