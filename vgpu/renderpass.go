// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	vk "github.com/goki/vulkan"
)

// RenderPass describes a single-subpass rendering into one color
// attachment, which is cleared at the start of the pass. The attachment
// stays in the color attachment layout throughout: transitions to and
// from the present layout are recorded explicitly by the [Framebuffer].
type RenderPass struct {
	Dev         vk.Device       `desc:"the device we're associated with -- this must be the same device that owns the Framebuffer -- e.g., the Surface"`
	Format      ImageFormat     `desc:"image format information for the framebuffer we render to"`
	VkClearPass vk.RenderPass   `desc:"the vulkan renderpass config that clears the frame before rendering"`
	ClearVals   []vk.ClearValue `desc:"values for clearing the color attachment"`
}

// Config configures the render pass for the given device and image format
func (rp *RenderPass) Config(dev vk.Device, imgFmt *ImageFormat) error {
	rp.Dev = dev
	rp.Format = *imgFmt
	if len(rp.ClearVals) == 0 {
		rp.SetClearColor(0, 0, 0, 1)
	}
	samples := rp.Format.Samples
	if samples == 0 {
		samples = vk.SampleCount1Bit
	}

	var renderPass vk.RenderPass
	ret := vk.CreateRenderPass(dev, &vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: 1,
		PAttachments: []vk.AttachmentDescription{{
			Format:         rp.Format.Format,
			Samples:        samples,
			LoadOp:         vk.AttachmentLoadOpClear,
			StoreOp:        vk.AttachmentStoreOpStore,
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			InitialLayout:  vk.ImageLayoutColorAttachmentOptimal,
			FinalLayout:    vk.ImageLayoutColorAttachmentOptimal,
		}},
		SubpassCount: 1,
		PSubpasses: []vk.SubpassDescription{{
			PipelineBindPoint:    vk.PipelineBindPointGraphics,
			ColorAttachmentCount: 1,
			PColorAttachments: []vk.AttachmentReference{{
				Attachment: 0,
				Layout:     vk.ImageLayoutColorAttachmentOptimal,
			}},
		}},
	}, nil, &renderPass)
	if err := NewError(ret); err != nil {
		return err
	}
	rp.VkClearPass = renderPass
	return nil
}

// SetClearColor sets the RGBA color that the attachment is cleared to
func (rp *RenderPass) SetClearColor(r, g, b, a float32) {
	if len(rp.ClearVals) == 0 {
		rp.ClearVals = make([]vk.ClearValue, 1)
	}
	rp.ClearVals[0].SetColor([]float32{r, g, b, a})
}

// Begin begins the render pass into the framebuffer, clearing it,
// and sets the viewport and scissor to cover the whole frame.
func (rp *RenderPass) Begin(cmd vk.CommandBuffer, fr *Framebuffer) {
	w, h := fr.Format.Size32()
	vk.CmdBeginRenderPass(cmd, &vk.RenderPassBeginInfo{
		SType:       vk.StructureTypeRenderPassBeginInfo,
		RenderPass:  rp.VkClearPass,
		Framebuffer: fr.Framebuffer,
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: vk.Extent2D{Width: w, Height: h},
		},
		ClearValueCount: uint32(len(rp.ClearVals)),
		PClearValues:    rp.ClearVals,
	}, vk.SubpassContentsInline)

	vk.CmdSetViewport(cmd, 0, 1, []vk.Viewport{{
		Width:    float32(w),
		Height:   float32(h),
		MinDepth: 0.0,
		MaxDepth: 1.0,
	}})
	vk.CmdSetScissor(cmd, 0, 1, []vk.Rect2D{{
		Offset: vk.Offset2D{X: 0, Y: 0},
		Extent: vk.Extent2D{Width: w, Height: h},
	}})
}

// End ends the render pass
func (rp *RenderPass) End(cmd vk.CommandBuffer) {
	vk.CmdEndRenderPass(cmd)
}

// Destroy destroys the render pass
func (rp *RenderPass) Destroy() {
	if rp.VkClearPass == nil {
		return
	}
	vk.DestroyRenderPass(rp.Dev, rp.VkClearPass, nil)
	rp.VkClearPass = nil
}
