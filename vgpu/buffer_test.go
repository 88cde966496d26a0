// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"testing"
	"unsafe"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	assert.Equal(t, 0, AlignUp(0, 256))
	assert.Equal(t, 256, AlignUp(1, 256))
	assert.Equal(t, 256, AlignUp(256, 256))
	assert.Equal(t, 512, AlignUp(257, 256))
	assert.Equal(t, 72, AlignUp(72, 1))
}

func TestUniformSize(t *testing.T) {
	assert.Equal(t, 256, UniformSize(16, 64))
	assert.Equal(t, 256, UniformSize(0, 0))
	assert.Equal(t, 512, UniformSize(300, 16))
	assert.Equal(t, 1024, UniformSize(16, 1024))
}

func TestFindMemoryType(t *testing.T) {
	types := []vk.MemoryPropertyFlags{
		vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit),
		vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit),
		vk.MemoryPropertyFlags(HostMemory),
		vk.MemoryPropertyFlags(HostMemory | vk.MemoryPropertyHostCachedBit),
	}
	want := vk.MemoryPropertyFlags(HostMemory)

	idx, err := FindMemoryType(types, 0xF, want)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), idx)

	idx, err = FindMemoryType(types, 0x8, want)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), idx)

	_, err = FindMemoryType(types, 0x3, want)
	assert.Error(t, err)

	_, err = FindMemoryType(nil, 0xF, want)
	assert.Error(t, err)
}

func TestBuffTypes(t *testing.T) {
	assert.Equal(t, vk.BufferUsageVertexBufferBit, VertexBuff.Usage())
	assert.Equal(t, vk.BufferUsageIndexBufferBit, IndexBuff.Usage())
	assert.Equal(t, vk.BufferUsageUniformBufferBit, UniformBuff.Usage())
	assert.Equal(t, "UniformBuff", UniformBuff.String())
	assert.Len(t, BuffTypesValues(), int(BuffTypesN))
	var bt BuffTypes
	require.NoError(t, bt.SetString("IndexBuff"))
	assert.Equal(t, IndexBuff, bt)
	assert.Error(t, bt.SetString("StorageBuff"))
	assert.Contains(t, VertexBuff.Desc(), "vertex input")
}

func TestBufferCopyTooBig(t *testing.T) {
	bf := &Buffer{Type: VertexBuff, Size: 8}
	err := bf.Copy(make([]byte, 16))
	assert.Error(t, err)
}

func TestBufferCopyUnmapped(t *testing.T) {
	bf := &Buffer{Type: UniformBuff, Size: 256}
	err := bf.Copy(make([]byte, 16))
	assert.ErrorContains(t, err, "not mapped")
}

func TestHostWriteBarrier(t *testing.T) {
	b := hostWriteBarrier()
	assert.Equal(t, vk.StructureTypeMemoryBarrier, b.SType)
	assert.Equal(t, vk.AccessFlags(vk.AccessHostWriteBit), b.SrcAccessMask)
	for _, bit := range []vk.AccessFlagBits{vk.AccessVertexAttributeReadBit, vk.AccessIndexReadBit, vk.AccessUniformReadBit} {
		assert.NotZero(t, b.DstAccessMask&vk.AccessFlags(bit))
	}
}

func TestSystemCmd(t *testing.T) {
	var x, y int
	cmds := []vk.CommandBuffer{vk.CommandBuffer(unsafe.Pointer(&x)), vk.CommandBuffer(unsafe.Pointer(&y))}
	sy := &System{Cmds: cmds, Sync: &FrameSync{InFlight: make([]*Fence, 2)}}
	assert.Equal(t, cmds[0], sy.Cmd())
	sy.Sync.Next()
	assert.Equal(t, cmds[1], sy.Cmd())
	sy.Sync.Next()
	assert.Equal(t, cmds[0], sy.Cmd())
}
