// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"image"
	"log/slog"

	vk "github.com/goki/vulkan"
)

// Surface manages the swapchain for presenting images to a
// window surface, with a Framebuffer for each swapchain image.
type Surface struct {
	GPU         *GPU           `desc:"pointer to gpu device, for convenience"`
	Device      *Device        `desc:"device for this surface, which must have a queue that can present to it"`
	RenderPass  *RenderPass    `desc:"the RenderPass for this Surface, typically from a System"`
	Format      ImageFormat    `desc:"has the current swapchain image format and dimensions"`
	NFrames     int            `desc:"number of images to request for the swapchain, e.g., 2 = double-buffering; after Init reflects actual number"`
	VSync       bool           `desc:"present with FIFO, waiting for vertical blank"`
	PresentMode vk.PresentMode `desc:"present mode in use"`
	Frames      []*Framebuffer `desc:"data for each image owned by the swapchain"`
	Surface     vk.Surface     `desc:"vulkan handle for surface"`
	Swapchain   vk.Swapchain   `desc:"vulkan handle for swapchain"`
}

// NewSurface returns a new surface initialized for given GPU and vulkan
// Surface handle, obtained from a valid window, using the given device,
// which must have been made with [Device.InitSurface] on the same surface.
// size is the requested image size, used if the surface does not set one,
// and nframes is the requested number of swapchain images.
func NewSurface(gp *GPU, dev *Device, vs vk.Surface, size image.Point, nframes int, vsync bool) (*Surface, error) {
	sf := &Surface{}
	sf.Defaults()
	sf.Format.Size = size
	sf.NFrames = nframes
	sf.VSync = vsync
	if err := sf.Init(gp, dev, vs); err != nil {
		sf.FreeSwapchain()
		return nil, err
	}
	return sf, nil
}

// Defaults sets the requested frames and format
func (sf *Surface) Defaults() {
	sf.NFrames = 2
	sf.VSync = true
	sf.Format.Defaults()
	sf.Format.Set(1024, 768, vk.FormatR8g8b8a8Unorm)
}

// Init initializes the swapchain and its frames
func (sf *Surface) Init(gp *GPU, dev *Device, vs vk.Surface) error {
	sf.GPU = gp
	sf.Device = dev
	sf.Surface = vs
	return sf.InitSwapchain()
}

// InitSwapchain initializes the swapchain for surface,
// replacing any existing one.
func (sf *Surface) InitSwapchain() error {
	gpu := sf.GPU.GPU
	var caps vk.SurfaceCapabilities
	ret := vk.GetPhysicalDeviceSurfaceCapabilities(gpu, sf.Surface, &caps)
	if err := NewError(ret); err != nil {
		return err
	}
	caps.Deref()
	caps.CurrentExtent.Deref()
	caps.MinImageExtent.Deref()
	caps.MaxImageExtent.Deref()

	var formatCount uint32
	vk.GetPhysicalDeviceSurfaceFormats(gpu, sf.Surface, &formatCount, nil)
	formats := make([]vk.SurfaceFormat, formatCount)
	vk.GetPhysicalDeviceSurfaceFormats(gpu, sf.Surface, &formatCount, formats)
	for i := range formats {
		formats[i].Deref()
	}
	format, err := ChooseSurfaceFormat(formats, sf.Format.Format)
	if err != nil {
		return err
	}

	var modeCount uint32
	vk.GetPhysicalDeviceSurfacePresentModes(gpu, sf.Surface, &modeCount, nil)
	modes := make([]vk.PresentMode, modeCount)
	vk.GetPhysicalDeviceSurfacePresentModes(gpu, sf.Surface, &modeCount, modes)
	sf.PresentMode = ChoosePresentMode(modes, sf.VSync)

	extent := ChooseExtent(caps.CurrentExtent, caps.MinImageExtent, caps.MaxImageExtent, sf.Format.Size)
	nimg := ChooseImageCount(caps.MinImageCount, caps.MaxImageCount, sf.NFrames)

	preTransform := vk.SurfaceTransformIdentityBit
	if vk.SurfaceTransformFlagBits(caps.SupportedTransforms)&preTransform == 0 {
		preTransform = caps.CurrentTransform
	}

	var swapchain vk.Swapchain
	oldSwapchain := sf.Swapchain
	ret = vk.CreateSwapchain(sf.Device.Device, &vk.SwapchainCreateInfo{
		SType:            vk.StructureTypeSwapchainCreateInfo,
		Surface:          sf.Surface,
		MinImageCount:    nimg,
		ImageFormat:      format.Format,
		ImageColorSpace:  format.ColorSpace,
		ImageExtent:      extent,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		PreTransform:     preTransform,
		CompositeAlpha:   ChooseCompositeAlpha(caps.SupportedCompositeAlpha),
		ImageArrayLayers: 1,
		ImageSharingMode: vk.SharingModeExclusive,
		PresentMode:      sf.PresentMode,
		OldSwapchain:     oldSwapchain,
		Clipped:          vk.True,
	}, nil, &swapchain)
	if err := NewError(ret); err != nil {
		return err
	}
	if oldSwapchain != vk.NullSwapchain {
		vk.DestroySwapchain(sf.Device.Device, oldSwapchain, nil)
	}
	sf.Swapchain = swapchain
	sf.Format.Set(int(extent.Width), int(extent.Height), format.Format)

	var imageCount uint32
	ret = vk.GetSwapchainImages(sf.Device.Device, sf.Swapchain, &imageCount, nil)
	if err := NewError(ret); err != nil {
		return err
	}
	images := make([]vk.Image, imageCount)
	ret = vk.GetSwapchainImages(sf.Device.Device, sf.Swapchain, &imageCount, images)
	if err := NewError(ret); err != nil {
		return err
	}
	sf.NFrames = int(imageCount)
	sf.Frames = make([]*Framebuffer, sf.NFrames)
	for i, img := range images {
		fr := &Framebuffer{}
		if err := fr.ConfigSurfaceImage(sf.Device.Device, sf.Format, img); err != nil {
			return err
		}
		sf.Frames[i] = fr
	}
	slog.Info("vgpu: swapchain ready", "format", sf.Format.String(), "images", sf.NFrames, "present", PresentModeString(sf.PresentMode))
	return nil
}

// FreeSwapchain frees the frames and the swapchain (for ReInit or Destroy)
func (sf *Surface) FreeSwapchain() {
	sf.Device.WaitIdle()
	sf.freeFrames()
	if sf.Swapchain != vk.NullSwapchain {
		vk.DestroySwapchain(sf.Device.Device, sf.Swapchain, nil)
		sf.Swapchain = vk.NullSwapchain
	}
}

func (sf *Surface) freeFrames() {
	for _, fr := range sf.Frames {
		fr.Destroy()
	}
	sf.Frames = nil
}

// ReInitSwapchain re-initializes the swapchain at the given size, which
// is used if the surface does not set it. This must be called when the
// window is resized or presenting reports that the swapchain is out of date.
// The frames are reconfigured for the RenderPass, if set.
func (sf *Surface) ReInitSwapchain(size image.Point) error {
	sf.Device.WaitIdle()
	sf.freeFrames()
	sf.Format.Size = size
	if err := sf.InitSwapchain(); err != nil {
		return err
	}
	if sf.RenderPass != nil {
		return sf.SetRenderPass(sf.RenderPass)
	}
	return nil
}

// SetRenderPass sets the RenderPass and makes the framebuffer of each frame for it
func (sf *Surface) SetRenderPass(rp *RenderPass) error {
	sf.RenderPass = rp
	for _, fr := range sf.Frames {
		if err := fr.ConfigRenderPass(rp); err != nil {
			return err
		}
	}
	return nil
}

// AcquireNextImage gets the index of the next swapchain image to render
// into, signaling sem when it is available. outdated is true when the
// swapchain no longer matches the surface and must be re-initialized.
func (sf *Surface) AcquireNextImage(sem vk.Semaphore) (idx int, outdated bool, err error) {
	var i uint32
	ret := vk.AcquireNextImage(sf.Device.Device, sf.Swapchain, vk.MaxUint64, sem, vk.Fence(vk.NullHandle), &i)
	switch ret {
	case vk.ErrorOutOfDate:
		return 0, true, nil
	case vk.Success, vk.Suboptimal:
		return int(i), false, nil
	}
	return 0, false, NewError(ret)
}

// PresentImage presents the image at idx once sem is signaled.
// outdated is true when the swapchain must be re-initialized.
func (sf *Surface) PresentImage(sem vk.Semaphore, idx int) (outdated bool, err error) {
	ret := vk.QueuePresent(sf.Device.Queue, &vk.PresentInfo{
		SType:              vk.StructureTypePresentInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{sem},
		SwapchainCount:     1,
		PSwapchains:        []vk.Swapchain{sf.Swapchain},
		PImageIndices:      []uint32{uint32(idx)},
	})
	switch ret {
	case vk.ErrorOutOfDate, vk.Suboptimal:
		return true, nil
	case vk.Success:
		return false, nil
	}
	return false, NewError(ret)
}

// Destroy destroys the swapchain and the surface.
// The device is not destroyed.
func (sf *Surface) Destroy() {
	if sf.Device != nil {
		sf.FreeSwapchain()
	}
	if sf.GPU != nil {
		sf.GPU.DestroySurface(sf.Surface)
	}
	sf.Surface = vk.NullSurface
	sf.GPU = nil
}
