// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package vgpu

import (
	"image"

	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// ErrNoWindow is returned on platforms built without window support
var ErrNoWindow = errors.New("vgpu: windows are not supported on this platform")

// Init returns ErrNoWindow: use LoadVulkan for offscreen use
func Init() error {
	return ErrNoWindow
}

// Terminate does nothing without window support
func Terminate() {}

// PollEvents does nothing without window support
func PollEvents() {}

// Window is not available on this platform
type Window struct{}

// NewWindow returns ErrNoWindow
func NewWindow(size image.Point, title string) (*Window, error) {
	return nil, ErrNoWindow
}

func (w *Window) InstanceExts() []string { return nil }

func (w *Window) CreateSurface(gp *GPU) (vk.Surface, error) {
	return vk.NullSurface, ErrNoWindow
}

func (w *Window) ShouldClose() bool { return true }

func (w *Window) FramebufferSize() image.Point { return image.Point{} }

func (w *Window) Resized() bool { return false }

func (w *Window) Destroy() {}
