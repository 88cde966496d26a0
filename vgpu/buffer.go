// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"unsafe"

	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// UniformAlign is the minimum alignment of uniform (constant) buffer
// sizes and offsets used here, which covers every device limit in practice.
const UniformAlign = 256

// HostMemory is the memory used for buffers written by the CPU and read
// by the GPU: visible to the host and coherent, so no flushes are needed.
const HostMemory = vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit

// Buffer is a vulkan buffer with its own host-visible memory, which stays
// mapped for its lifetime so it can be updated at any time, e.g., every frame.
// This is simple but slower for the GPU to read than device-local memory,
// which is fine for small amounts of data.
type Buffer struct {
	Type    BuffTypes       `desc:"role of the buffer"`
	Size    int             `desc:"allocated size of the buffer in bytes"`
	Dev     vk.Device       `desc:"device that owns the buffer"`
	Buffer  vk.Buffer       `desc:"vulkan buffer handle"`
	Mem     vk.DeviceMemory `desc:"memory bound to the buffer"`
	HostPtr unsafe.Pointer  `desc:"host pointer to the mapped memory"`
}

// NewBuffer makes a new buffer of the given type and size, in host
// memory of the GPU, mapped. Uniform buffer sizes are aligned up
// with [UniformSize].
func NewBuffer(gp *GPU, dev vk.Device, typ BuffTypes, size int) (*Buffer, error) {
	if size <= 0 {
		return nil, errors.Errorf("vgpu.NewBuffer: invalid size %d for %s", size, typ)
	}
	if typ == UniformBuff {
		size = UniformSize(size, gp.MinUniformAlign())
	}
	bf := &Buffer{Type: typ, Size: size, Dev: dev}

	var buffer vk.Buffer
	ret := vk.CreateBuffer(dev, &vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(size),
		Usage:       vk.BufferUsageFlags(typ.Usage()),
		SharingMode: vk.SharingModeExclusive,
	}, nil, &buffer)
	if err := NewError(ret); err != nil {
		return nil, err
	}
	bf.Buffer = buffer

	var memReqs vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(dev, buffer, &memReqs)
	memReqs.Deref()
	memType, err := FindMemoryType(gp.MemoryTypes(), memReqs.MemoryTypeBits, vk.MemoryPropertyFlags(HostMemory))
	if err != nil {
		bf.Destroy()
		return nil, err
	}

	var memory vk.DeviceMemory
	ret = vk.AllocateMemory(dev, &vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  memReqs.Size,
		MemoryTypeIndex: memType,
	}, nil, &memory)
	if err := NewError(ret); err != nil {
		bf.Destroy()
		return nil, err
	}
	bf.Mem = memory
	if err := NewError(vk.BindBufferMemory(dev, buffer, memory, 0)); err != nil {
		bf.Destroy()
		return nil, err
	}

	var ptr unsafe.Pointer
	ret = vk.MapMemory(dev, memory, 0, vk.DeviceSize(size), 0, &ptr)
	if err := NewError(ret); err != nil {
		bf.Destroy()
		return nil, err
	}
	bf.HostPtr = ptr
	return bf, nil
}

// Copy copies the data into the start of the buffer.
// It is an error for the data to be larger than the buffer.
func (bf *Buffer) Copy(data []byte) error {
	if len(data) > bf.Size {
		return errors.Errorf("vgpu.Buffer.Copy: %d bytes do not fit in %s of size %d", len(data), bf.Type, bf.Size)
	}
	if bf.HostPtr == nil {
		return errors.Errorf("vgpu.Buffer.Copy: %s is not mapped", bf.Type)
	}
	vk.Memcopy(bf.HostPtr, data)
	return nil
}

// Destroy unmaps and frees the memory and destroys the buffer
func (bf *Buffer) Destroy() {
	if bf.HostPtr != nil {
		vk.UnmapMemory(bf.Dev, bf.Mem)
		bf.HostPtr = nil
	}
	if bf.Buffer != nil {
		vk.DestroyBuffer(bf.Dev, bf.Buffer, nil)
		bf.Buffer = nil
	}
	if bf.Mem != nil {
		vk.FreeMemory(bf.Dev, bf.Mem, nil)
		bf.Mem = nil
	}
}

// HostWriteBarrier records a barrier that makes host writes to
// mapped buffers visible to vertex input and shader reads
func HostWriteBarrier(cmd vk.CommandBuffer) {
	vk.CmdPipelineBarrier(cmd,
		vk.PipelineStageFlags(vk.PipelineStageHostBit),
		vk.PipelineStageFlags(vk.PipelineStageVertexInputBit|vk.PipelineStageVertexShaderBit),
		0, 1, []vk.MemoryBarrier{hostWriteBarrier()}, 0, nil, 0, nil)
}

func hostWriteBarrier() vk.MemoryBarrier {
	return vk.MemoryBarrier{
		SType:         vk.StructureTypeMemoryBarrier,
		SrcAccessMask: vk.AccessFlags(vk.AccessHostWriteBit),
		DstAccessMask: vk.AccessFlags(vk.AccessVertexAttributeReadBit | vk.AccessIndexReadBit | vk.AccessUniformReadBit),
	}
}

// AlignUp returns n rounded up to a multiple of align,
// which must be a power of 2.
func AlignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) &^ (align - 1)
}

// UniformSize returns the size to allocate for a uniform buffer holding
// n bytes: aligned up to the larger of [UniformAlign] and the device's
// minimum uniform buffer offset alignment, and never 0.
func UniformSize(n, minAlign int) int {
	align := UniformAlign
	if minAlign > align {
		align = minAlign
	}
	if n <= 0 {
		return align
	}
	return AlignUp(n, align)
}

// FindMemoryType returns the index of the first memory type that is allowed
// by the filter bits (from the buffer's memory requirements) and has all of
// the wanted property flags.
func FindMemoryType(types []vk.MemoryPropertyFlags, filter uint32, want vk.MemoryPropertyFlags) (uint32, error) {
	for i, flags := range types {
		if i >= 32 {
			break
		}
		if filter&(1<<uint(i)) != 0 && flags&want == want {
			return uint32(i), nil
		}
	}
	return 0, errors.Errorf("vulkan error: no memory type with properties %#x among %d types (filter %#x)", uint32(want), len(types), filter)
}
