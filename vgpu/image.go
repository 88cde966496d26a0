// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"fmt"
	"image"

	vk "github.com/goki/vulkan"
)

// ImageFormat describes the size and vulkan format of an Image
type ImageFormat struct {
	Size    image.Point            `desc:"Size of image"`
	Format  vk.Format              `desc:"Image format -- FormatR8g8b8a8Srgb is a standard default"`
	Samples vk.SampleCountFlagBits `desc:"number of samples -- set higher for Framebuffer rendering but otherwise default of SampleCount1Bit"`
}

// NewImageFormat returns a new ImageFormat with given params
func NewImageFormat(width, height int, ft vk.Format) *ImageFormat {
	im := &ImageFormat{}
	im.Defaults()
	im.Set(width, height, ft)
	return im
}

// Defaults sets the standard format and a single sample
func (im *ImageFormat) Defaults() {
	im.Format = vk.FormatR8g8b8a8Srgb
	im.Samples = vk.SampleCount1Bit
}

// SetSize sets the width, height
func (im *ImageFormat) SetSize(w, h int) {
	im.Size = image.Point{X: w, Y: h}
}

// Set sets width, height and format
func (im *ImageFormat) Set(w, h int, ft vk.Format) {
	im.SetSize(w, h)
	im.Format = ft
}

// Size32 returns size as uint32 values
func (im *ImageFormat) Size32() (width, height uint32) {
	width = uint32(im.Size.X)
	height = uint32(im.Size.Y)
	return
}

// Extent returns the size as a vulkan extent
func (im *ImageFormat) Extent() vk.Extent2D {
	w, h := im.Size32()
	return vk.Extent2D{Width: w, Height: h}
}

// Bounds returns the rectangle defining this image: 0,0,w,h
func (im *ImageFormat) Bounds() image.Rectangle {
	return image.Rectangle{Max: im.Size}
}

// BytesPerPixel returns number of bytes required to represent
// one Pixel (in Host memory at least).
func (im *ImageFormat) BytesPerPixel() int {
	return FormatSizes[im.Format]
}

// String returns the format and size
func (im *ImageFormat) String() string {
	return fmt.Sprintf("%s: %dx%d", FormatString(im.Format), im.Size.X, im.Size.Y)
}

// ColorRange is the subresource range of a single-level color image
var ColorRange = vk.ImageSubresourceRange{
	AspectMask: vk.ImageAspectFlags(vk.ImageAspectColorBit),
	LevelCount: 1,
	LayerCount: 1,
}

// NewImageView makes a standard 2D color view of the given image
func NewImageView(dev vk.Device, img vk.Image, format vk.Format) (vk.ImageView, error) {
	var view vk.ImageView
	ret := vk.CreateImageView(dev, &vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Format:   format,
		ViewType: vk.ImageViewType2d,
		Components: vk.ComponentMapping{
			R: vk.ComponentSwizzleIdentity,
			G: vk.ComponentSwizzleIdentity,
			B: vk.ComponentSwizzleIdentity,
			A: vk.ComponentSwizzleIdentity,
		},
		SubresourceRange: ColorRange,
		Image:            img,
	}, nil, &view)
	return view, NewError(ret)
}

// LayoutTransition describes an image layout change recorded with a
// pipeline barrier, along with the memory access and pipeline stages
// on either side of it.
type LayoutTransition struct {
	OldLayout vk.ImageLayout
	NewLayout vk.ImageLayout
	SrcAccess vk.AccessFlagBits
	DstAccess vk.AccessFlagBits
	SrcStage  vk.PipelineStageFlagBits
	DstStage  vk.PipelineStageFlagBits
}

// PresentToRender transitions a swapchain image to be rendered to.
// The old contents are discarded, as the render pass clears them.
var PresentToRender = LayoutTransition{
	OldLayout: vk.ImageLayoutUndefined,
	NewLayout: vk.ImageLayoutColorAttachmentOptimal,
	DstAccess: vk.AccessColorAttachmentWriteBit,
	SrcStage:  vk.PipelineStageColorAttachmentOutputBit,
	DstStage:  vk.PipelineStageColorAttachmentOutputBit,
}

// RenderToPresent transitions a rendered swapchain image to be presented
var RenderToPresent = LayoutTransition{
	OldLayout: vk.ImageLayoutColorAttachmentOptimal,
	NewLayout: vk.ImageLayoutPresentSrc,
	SrcAccess: vk.AccessColorAttachmentWriteBit,
	SrcStage:  vk.PipelineStageColorAttachmentOutputBit,
	DstStage:  vk.PipelineStageBottomOfPipeBit,
}

// Barrier records the layout transition of the image into cmd
func (lt *LayoutTransition) Barrier(cmd vk.CommandBuffer, img vk.Image) {
	vk.CmdPipelineBarrier(cmd,
		vk.PipelineStageFlags(lt.SrcStage),
		vk.PipelineStageFlags(lt.DstStage),
		0, 0, nil, 0, nil, 1, []vk.ImageMemoryBarrier{{
			SType:               vk.StructureTypeImageMemoryBarrier,
			SrcAccessMask:       vk.AccessFlags(lt.SrcAccess),
			DstAccessMask:       vk.AccessFlags(lt.DstAccess),
			OldLayout:           lt.OldLayout,
			NewLayout:           lt.NewLayout,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Image:               img,
			SubresourceRange:    ColorRange,
		}})
}
