// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// Framebuffer combines a swapchain image, the view used to render to it,
// and the vulkan framebuffer that binds that view to a RenderPass.
type Framebuffer struct {
	Format      ImageFormat    `desc:"format and size of the image"`
	Dev         vk.Device      `desc:"device that owns the view and framebuffer"`
	Image       vk.Image       `desc:"the image, owned by the swapchain"`
	View        vk.ImageView   `desc:"the render target view of the image"`
	RenderPass  *RenderPass    `desc:"pointer to the associated renderpass"`
	Framebuffer vk.Framebuffer `desc:"vulkan framebuffer"`
}

// ConfigSurfaceImage configures settings for given existing surface image
// and format, making the view. Does not yet make the Framebuffer because it
// still needs the RenderPass (see ConfigRenderPass)
func (fb *Framebuffer) ConfigSurfaceImage(dev vk.Device, fmt ImageFormat, img vk.Image) error {
	fb.Format = fmt
	fb.Dev = dev
	fb.Image = img
	view, err := NewImageView(dev, img, fmt.Format)
	if err != nil {
		return err
	}
	fb.View = view
	return nil
}

// ConfigRenderPass makes the vulkan framebuffer for the given RenderPass,
// destroying any existing one.
func (fb *Framebuffer) ConfigRenderPass(rp *RenderPass) error {
	if fb.Dev != rp.Dev {
		return errors.New("vgpu.Framebuffer: image and renderpass have different devices")
	}
	fb.DestroyFrame()
	fb.RenderPass = rp
	w, h := fb.Format.Size32()
	var frameBuff vk.Framebuffer
	ret := vk.CreateFramebuffer(fb.Dev, &vk.FramebufferCreateInfo{
		SType:           vk.StructureTypeFramebufferCreateInfo,
		RenderPass:      rp.VkClearPass,
		AttachmentCount: 1,
		PAttachments:    []vk.ImageView{fb.View},
		Width:           w,
		Height:          h,
		Layers:          1,
	}, nil, &frameBuff)
	if err := NewError(ret); err != nil {
		return err
	}
	fb.Framebuffer = frameBuff
	return nil
}

// TransitionToRender records the barrier that makes the image
// ready to be rendered to, after it has been acquired.
func (fb *Framebuffer) TransitionToRender(cmd vk.CommandBuffer) {
	PresentToRender.Barrier(cmd, fb.Image)
}

// TransitionToPresent records the barrier that makes the rendered
// image ready to be presented.
func (fb *Framebuffer) TransitionToPresent(cmd vk.CommandBuffer) {
	RenderToPresent.Barrier(cmd, fb.Image)
}

// DestroyFrame destroys the framebuffer if non-nil
func (fb *Framebuffer) DestroyFrame() {
	if fb.Framebuffer == nil {
		return
	}
	vk.DestroyFramebuffer(fb.Dev, fb.Framebuffer, nil)
	fb.Framebuffer = nil
}

// Destroy destroys the framebuffer and the view.
// The image is owned by the swapchain.
func (fb *Framebuffer) Destroy() {
	fb.DestroyFrame()
	if fb.View != nil {
		vk.DestroyImageView(fb.Dev, fb.View, nil)
		fb.View = nil
	}
	fb.RenderPass = nil
}
