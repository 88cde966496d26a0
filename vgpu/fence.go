// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"time"

	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// WaitForever is a [Fence.Wait] timeout that never expires
const WaitForever time.Duration = -1

// ErrTimeout is returned by [Fence.Wait] when the timeout expires first
var ErrTimeout = errors.New("vgpu: fence wait timed out")

// Fence is a GPU to CPU synchronization point: the GPU signals it
// when the work submitted with it is complete, and the CPU waits on it.
type Fence struct {
	Dev   vk.Device `desc:"device the fence belongs to"`
	Fence vk.Fence  `desc:"vulkan fence handle"`
}

// NewFence makes a new fence, initially signaled if signaled is true,
// so that the first wait on it returns immediately.
func NewFence(dev vk.Device, signaled bool) (*Fence, error) {
	var flags vk.FenceCreateFlags
	if signaled {
		flags = vk.FenceCreateFlags(vk.FenceCreateSignaledBit)
	}
	var fence vk.Fence
	ret := vk.CreateFence(dev, &vk.FenceCreateInfo{
		SType: vk.StructureTypeFenceCreateInfo,
		Flags: flags,
	}, nil, &fence)
	if err := NewError(ret); err != nil {
		return nil, err
	}
	return &Fence{Dev: dev, Fence: fence}, nil
}

// timeoutNanos converts a timeout to what vkWaitForFences expects
func timeoutNanos(d time.Duration) uint64 {
	if d < 0 {
		return vk.MaxUint64
	}
	return uint64(d.Nanoseconds())
}

// Wait blocks until the fence is signaled or the timeout expires,
// in which case it returns [ErrTimeout].
func (f *Fence) Wait(timeout time.Duration) error {
	ret := vk.WaitForFences(f.Dev, 1, []vk.Fence{f.Fence}, vk.True, timeoutNanos(timeout))
	if ret == vk.Timeout {
		return ErrTimeout
	}
	return NewError(ret)
}

// Reset sets the fence back to unsignaled, before submitting with it
func (f *Fence) Reset() error {
	return NewError(vk.ResetFences(f.Dev, 1, []vk.Fence{f.Fence}))
}

// Destroy destroys the fence
func (f *Fence) Destroy() {
	if f == nil || f.Fence == nil {
		return
	}
	vk.DestroyFence(f.Dev, f.Fence, nil)
	f.Fence = nil
}

// FrameSync holds the synchronization objects for rendering with
// several frames in flight: for each frame, a semaphore signaled when
// its swapchain image is acquired and a fence signaled when its commands
// complete, and for each swapchain image, a semaphore signaled when
// rendering to it is done, which presenting waits on.
type FrameSync struct {
	Dev           vk.Device      `desc:"device the objects belong to"`
	ImageAcquired []vk.Semaphore `desc:"per frame in flight: signaled when the swapchain image is acquired"`
	InFlight      []*Fence       `desc:"per frame in flight: signaled when the frame's commands are complete"`
	RenderDone    []vk.Semaphore `desc:"per swapchain image: signaled when rendering is done, before present"`
	Index         int            `desc:"current frame in flight"`
}

// NewFrameSync makes the synchronization objects for nframes frames in
// flight and nimages swapchain images. The fences start signaled.
// nimages can be 0 when there is no swapchain.
func NewFrameSync(dev vk.Device, nframes, nimages int) (*FrameSync, error) {
	fs := &FrameSync{Dev: dev}
	for i := 0; i < nframes; i++ {
		f, err := NewFence(dev, true)
		if err != nil {
			fs.Destroy()
			return nil, err
		}
		fs.InFlight = append(fs.InFlight, f)
		sem, err := NewSemaphore(dev)
		if err != nil {
			fs.Destroy()
			return nil, err
		}
		fs.ImageAcquired = append(fs.ImageAcquired, sem)
	}
	if err := fs.SetImages(nimages); err != nil {
		fs.Destroy()
		return nil, err
	}
	return fs, nil
}

// SetImages remakes the RenderDone semaphores for the given number of
// swapchain images, as needed after the swapchain is recreated.
func (fs *FrameSync) SetImages(nimages int) error {
	fs.destroyRenderDone()
	for i := 0; i < nimages; i++ {
		sem, err := NewSemaphore(fs.Dev)
		if err != nil {
			return err
		}
		fs.RenderDone = append(fs.RenderDone, sem)
	}
	return nil
}

// NFrames returns the number of frames in flight
func (fs *FrameSync) NFrames() int {
	return len(fs.InFlight)
}

// Fence returns the in-flight fence of the current frame
func (fs *FrameSync) Fence() *Fence {
	return fs.InFlight[fs.Index]
}

// Acquired returns the image acquired semaphore of the current frame
func (fs *FrameSync) Acquired() vk.Semaphore {
	return fs.ImageAcquired[fs.Index]
}

// Next advances to the next frame in flight
func (fs *FrameSync) Next() {
	fs.Index = NextFrame(fs.Index, fs.NFrames())
}

// NextFrame returns the frame index after idx, wrapping at n
func NextFrame(idx, n int) int {
	if n <= 0 {
		return 0
	}
	return (idx + 1) % n
}

func (fs *FrameSync) destroyRenderDone() {
	for _, sem := range fs.RenderDone {
		vk.DestroySemaphore(fs.Dev, sem, nil)
	}
	fs.RenderDone = nil
}

// Destroy destroys all the fences and semaphores
func (fs *FrameSync) Destroy() {
	for _, f := range fs.InFlight {
		f.Destroy()
	}
	fs.InFlight = nil
	for _, sem := range fs.ImageAcquired {
		vk.DestroySemaphore(fs.Dev, sem, nil)
	}
	fs.ImageAcquired = nil
	fs.destroyRenderDone()
}

// NewSemaphore makes a new GPU to GPU synchronization semaphore
func NewSemaphore(dev vk.Device) (vk.Semaphore, error) {
	var sem vk.Semaphore
	ret := vk.CreateSemaphore(dev, &vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
	}, nil, &sem)
	return sem, NewError(ret)
}
