// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

//go:generate core generate

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// Topologies are the different vertex topology
type Topologies int32 //enums:enum

const (
	PointList     = Topologies(vk.PrimitiveTopologyPointList)
	LineList      = Topologies(vk.PrimitiveTopologyLineList)
	LineStrip     = Topologies(vk.PrimitiveTopologyLineStrip)
	TriangleList  = Topologies(vk.PrimitiveTopologyTriangleList)
	TriangleStrip = Topologies(vk.PrimitiveTopologyTriangleStrip)
)

// ShaderTypes is a list of GPU shader types
type ShaderTypes int32 //enums:enum

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

// StageFlags returns the pipeline stage bit for the shader type
func (st ShaderTypes) StageFlags() vk.ShaderStageFlagBits {
	if st == FragmentShader {
		return vk.ShaderStageFragmentBit
	}
	return vk.ShaderStageVertexBit
}

// BuffTypes are the roles a [Buffer] can play
type BuffTypes int32 //enums:enum

const (
	// VertexBuff holds per-vertex data read by the vertex input stage
	VertexBuff BuffTypes = iota

	// IndexBuff holds vertex indexes for indexed drawing
	IndexBuff

	// UniformBuff holds constants read by shaders through a descriptor
	UniformBuff
)

// Usage returns the vulkan buffer usage for this buffer type
func (bt BuffTypes) Usage() vk.BufferUsageFlagBits {
	switch bt {
	case IndexBuff:
		return vk.BufferUsageIndexBufferBit
	case UniformBuff:
		return vk.BufferUsageUniformBufferBit
	default:
		return vk.BufferUsageVertexBufferBit
	}
}

// FormatSizes gives the byte size of the vertex formats used here
var FormatSizes = map[vk.Format]int{
	vk.FormatR32Sfloat:          4,
	vk.FormatR32g32Sfloat:       8,
	vk.FormatR32g32b32Sfloat:    12,
	vk.FormatR32g32b32a32Sfloat: 16,
	vk.FormatR8g8b8a8Unorm:      4,
	vk.FormatR8g8b8a8Srgb:       4,
	vk.FormatB8g8r8a8Unorm:      4,
	vk.FormatB8g8r8a8Srgb:       4,
}

// FormatNames gives readable names for the formats used here
var FormatNames = map[vk.Format]string{
	vk.FormatUndefined:          "Undefined",
	vk.FormatR32Sfloat:          "R32Sfloat",
	vk.FormatR32g32Sfloat:       "R32g32Sfloat",
	vk.FormatR32g32b32Sfloat:    "R32g32b32Sfloat",
	vk.FormatR32g32b32a32Sfloat: "R32g32b32a32Sfloat",
	vk.FormatR8g8b8a8Unorm:      "R8g8b8a8Unorm",
	vk.FormatR8g8b8a8Srgb:       "R8g8b8a8Srgb",
	vk.FormatB8g8r8a8Unorm:      "B8g8r8a8Unorm",
	vk.FormatB8g8r8a8Srgb:       "B8g8r8a8Srgb",
}

// FormatString returns the name of the format, or its number
// if it is not one of [FormatNames].
func FormatString(f vk.Format) string {
	if nm, ok := FormatNames[f]; ok {
		return nm
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// PresentModeString returns a readable name for the present mode
func PresentModeString(pm vk.PresentMode) string {
	switch pm {
	case vk.PresentModeImmediate:
		return "Immediate"
	case vk.PresentModeMailbox:
		return "Mailbox"
	case vk.PresentModeFifo:
		return "Fifo"
	case vk.PresentModeFifoRelaxed:
		return "FifoRelaxed"
	}
	return fmt.Sprintf("PresentMode(%d)", int32(pm))
}
