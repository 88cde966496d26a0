// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	vk "github.com/goki/vulkan"
)

// CmdPool is a command pool and buffers allocated from it
type CmdPool struct {
	Pool vk.CommandPool   `desc:"the command pool"`
	Buff vk.CommandBuffer `desc:"a general purpose command buffer, for one-shot commands"`
	Dev  vk.Device        `desc:"device the pool belongs to"`
}

// Init initializes the pool for the device's queue family
func (cp *CmdPool) Init(dv *Device, flags vk.CommandPoolCreateFlagBits) error {
	var cmdPool vk.CommandPool
	ret := vk.CreateCommandPool(dv.Device, &vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		QueueFamilyIndex: dv.QueueIndex,
		Flags:            vk.CommandPoolCreateFlags(flags),
	}, nil, &cmdPool)
	if err := NewError(ret); err != nil {
		return err
	}
	cp.Pool = cmdPool
	cp.Dev = dv.Device
	return nil
}

// ConfigResettable initializes the pool so that
// its command buffers can be individually reset and reused.
func (cp *CmdPool) ConfigResettable(dv *Device) error {
	return cp.Init(dv, vk.CommandPoolCreateResetCommandBufferBit)
}

// NewBuffers allocates n primary command buffers from the pool
func (cp *CmdPool) NewBuffers(n int) ([]vk.CommandBuffer, error) {
	cmdBuffs := make([]vk.CommandBuffer, n)
	ret := vk.AllocateCommandBuffers(cp.Dev, &vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        cp.Pool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: uint32(n),
	}, cmdBuffs)
	if err := NewError(ret); err != nil {
		return nil, err
	}
	return cmdBuffs, nil
}

// NewBuffer allocates a new command buffer, which is also set as Buff
func (cp *CmdPool) NewBuffer() (vk.CommandBuffer, error) {
	bs, err := cp.NewBuffers(1)
	if err != nil {
		return nil, err
	}
	cp.Buff = bs[0]
	return cp.Buff, nil
}

// BeginCmd resets the given command buffer and begins recording
func (cp *CmdPool) BeginCmd(cmd vk.CommandBuffer) error {
	if err := NewError(vk.ResetCommandBuffer(cmd, 0)); err != nil {
		return err
	}
	return NewError(vk.BeginCommandBuffer(cmd, &vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
	}))
}

// BeginCmdOneTime resets the given command buffer and begins
// recording commands that are submitted only once
func (cp *CmdPool) BeginCmdOneTime(cmd vk.CommandBuffer) error {
	if err := NewError(vk.ResetCommandBuffer(cmd, 0)); err != nil {
		return err
	}
	return NewError(vk.BeginCommandBuffer(cmd, &vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit),
	}))
}

// EndCmd ends recording of the command buffer
func (cp *CmdPool) EndCmd(cmd vk.CommandBuffer) error {
	return NewError(vk.EndCommandBuffer(cmd))
}

// SubmitWait submits the recorded commands to the device queue
// and waits for them to complete, using a temporary fence.
func (cp *CmdPool) SubmitWait(dv *Device, cmd vk.CommandBuffer) error {
	fence, err := NewFence(dv.Device, false)
	if err != nil {
		return err
	}
	defer fence.Destroy()
	if err := Submit(dv, cmd, nil, nil, fence); err != nil {
		return err
	}
	return fence.Wait(WaitForever)
}

// Submit submits the recorded commands to the device queue. The submission
// waits on waitSem at the color output stage and signals signalSem,
// each if non-nil, and fence is signaled on completion if non-nil.
func Submit(dv *Device, cmd vk.CommandBuffer, waitSem, signalSem []vk.Semaphore, fence *Fence) error {
	si := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: 1,
		PCommandBuffers:    []vk.CommandBuffer{cmd},
	}
	if len(waitSem) > 0 {
		stages := make([]vk.PipelineStageFlags, len(waitSem))
		for i := range stages {
			stages[i] = vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)
		}
		si.WaitSemaphoreCount = uint32(len(waitSem))
		si.PWaitSemaphores = waitSem
		si.PWaitDstStageMask = stages
	}
	if len(signalSem) > 0 {
		si.SignalSemaphoreCount = uint32(len(signalSem))
		si.PSignalSemaphores = signalSem
	}
	vf := vk.Fence(vk.NullHandle)
	if fence != nil {
		vf = fence.Fence
	}
	return NewError(vk.QueueSubmit(dv.Queue, 1, []vk.SubmitInfo{si}, vf))
}

// Destroy destroys the pool, which frees all of its buffers
func (cp *CmdPool) Destroy() {
	if cp.Pool == nil {
		return
	}
	vk.DestroyCommandPool(cp.Dev, cp.Pool, nil)
	cp.Pool = nil
	cp.Buff = nil
}
