// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"log/slog"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// System manages a system of Pipelines that all share a common
// RenderPass and Vars (root signature), along with the command pool,
// a command buffer per frame in flight, and the frame synchronization.
// It uses a logical device owned by the caller, typically the one
// made for a Surface.
type System struct {
	Name       string                        `desc:"optional name of this System"`
	GPU        *GPU                          `desc:"gpu device"`
	Device     *Device                       `desc:"logical device for this System, shared with the Surface"`
	CmdPool    CmdPool                       `desc:"cmd pool specific to this system"`
	Cmds       []vk.CommandBuffer            `desc:"command buffer for each frame in flight"`
	Sync       *FrameSync                    `desc:"fences and semaphores for the frames in flight"`
	Pipelines  ordmap.Map[string, *Pipeline] `desc:"all pipelines, in order added -- names must be unique"`
	Vars       Vars                          `desc:"the root signature layout and descriptor sets"`
	RenderPass RenderPass                    `desc:"renderpass for this system"`
}

// NewGraphicsSystem returns a new System for graphics use on the given
// device, with the command pool, one command buffer and a signaled fence
// for each of nframes frames in flight.
func NewGraphicsSystem(gp *GPU, name string, dev *Device, nframes int) (*System, error) {
	sy := &System{}
	if err := sy.InitGraphics(gp, name, dev, nframes); err != nil {
		sy.Destroy()
		return nil, err
	}
	return sy, nil
}

// InitGraphics initializes the System for graphics use.
func (sy *System) InitGraphics(gp *GPU, name string, dev *Device, nframes int) error {
	sy.GPU = gp
	sy.Name = name
	sy.Device = dev
	if nframes < 1 {
		return errors.Errorf("vgpu.System %q: need at least one frame in flight, got %d", name, nframes)
	}
	if err := sy.CmdPool.ConfigResettable(dev); err != nil {
		return err
	}
	cmds, err := sy.CmdPool.NewBuffers(nframes)
	if err != nil {
		return err
	}
	sy.Cmds = cmds
	if _, err := sy.CmdPool.NewBuffer(); err != nil {
		return err
	}
	sy.Sync, err = NewFrameSync(dev.Device, nframes, 0)
	return err
}

// Cmd returns the command buffer of the current frame in flight
func (sy *System) Cmd() vk.CommandBuffer {
	return sy.Cmds[sy.Sync.Index]
}

// AddPipeline adds given pipeline
func (sy *System) AddPipeline(pl *Pipeline) {
	sy.Pipelines.Add(pl.Name, pl)
}

// NewPipeline returns a new pipeline added to this System,
// initialized for use in this system.
func (sy *System) NewPipeline(name string) *Pipeline {
	pl := &Pipeline{Name: name}
	pl.Init(sy)
	sy.AddPipeline(pl)
	return pl
}

// PipelineByName returns the pipeline with the given name
func (sy *System) PipelineByName(name string) (*Pipeline, error) {
	pl, ok := sy.Pipelines.ValueByKeyTry(name)
	if !ok {
		return nil, errors.Errorf("vgpu.System %q: pipeline %q not found", sy.Name, name)
	}
	return pl, nil
}

// WaitUploads submits a barrier for host writes to buffers on the
// one-shot command buffer of the pool, and waits for it to complete,
// so that all setup work is done on the GPU before the first frame.
func (sy *System) WaitUploads() error {
	cp := &sy.CmdPool
	if err := cp.BeginCmdOneTime(cp.Buff); err != nil {
		return err
	}
	HostWriteBarrier(cp.Buff)
	if err := cp.EndCmd(cp.Buff); err != nil {
		return err
	}
	return cp.SubmitWait(sy.Device, cp.Buff)
}

// ConfigRender configures the renderpass for the image format
// that we're rendering to.
func (sy *System) ConfigRender(imgFmt *ImageFormat) error {
	return sy.RenderPass.Config(sy.Device.Device, imgFmt)
}

// SetClearColor sets the RGBA color that each frame is cleared to
func (sy *System) SetClearColor(clr [4]float32) {
	sy.RenderPass.SetClearColor(clr[0], clr[1], clr[2], clr[3])
}

// ConfigVars makes the root signature layout and one descriptor set
// per frame in flight.
func (sy *System) ConfigVars() error {
	if err := sy.Vars.Config(sy.Device.Device, len(sy.Cmds)); err != nil {
		return err
	}
	if sy.GPU.Debug {
		slog.Debug("vgpu.System vars", "system", sy.Name, "vars", sy.Vars.StringDoc())
	}
	return nil
}

// ConfigPipelines configures all the pipelines, after the Vars
// and RenderPass have been configured and the shaders loaded.
func (sy *System) ConfigPipelines() error {
	for _, kv := range sy.Pipelines.Order {
		if err := kv.Value.Config(); err != nil {
			return err
		}
	}
	return nil
}

// BeginRenderPass records the transition of the frame's image to
// the render target layout and begins the clearing render pass into it.
func (sy *System) BeginRenderPass(cmd vk.CommandBuffer, fr *Framebuffer) {
	fr.TransitionToRender(cmd)
	sy.RenderPass.Begin(cmd, fr)
}

// EndRenderPass ends the render pass and records the transition
// of the frame's image back to the present layout.
func (sy *System) EndRenderPass(cmd vk.CommandBuffer, fr *Framebuffer) {
	sy.RenderPass.End(cmd)
	fr.TransitionToPresent(cmd)
}

// Destroy destroys everything made by the System, in reverse order.
// The device is not destroyed.
func (sy *System) Destroy() {
	for _, kv := range sy.Pipelines.Order {
		kv.Value.Destroy()
	}
	sy.Pipelines.Reset()
	sy.Vars.Destroy()
	sy.RenderPass.Destroy()
	if sy.Sync != nil {
		sy.Sync.Destroy()
		sy.Sync = nil
	}
	sy.CmdPool.Destroy()
	sy.Cmds = nil
	sy.GPU = nil
}
