// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package vgpu

import (
	"image"

	"cogentcore.org/hellotri/base/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/goki/vulkan"
)

// note: this file contains the glfw dependencies, for desktop platform builds.
// glfw calls must all be made on the main thread, which must be locked
// with runtime.LockOSThread in an init function.

// Init initializes vulkan system for Display-enabled use, using glfw.
// Must call before doing any vgpu stuff.
// Calls glfw.Init and sets the Vulkan instance proc addr and calls Init.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	err := glfw.Init()
	if err != nil {
		return errors.Log(err)
	}
	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	return errors.Log(vk.Init())
}

// Terminate shuts down the vulkan system -- call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// PollEvents processes pending window events, calling the callbacks
func PollEvents() {
	glfw.PollEvents()
}

// Window is an OS window without a client API, that Vulkan presents to
type Window struct {
	Glfw *glfw.Window

	resized bool
}

// NewWindow opens a new window of the given size and title
func NewWindow(size image.Point, title string) (*Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glw, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	w := &Window{Glfw: glw}
	glw.SetFramebufferSizeCallback(w.fbResized)
	return w, nil
}

func (w *Window) fbResized(gw *glfw.Window, width, height int) {
	w.resized = true
}

// InstanceExts returns the instance extensions needed to present to the window
func (w *Window) InstanceExts() []string {
	return w.Glfw.GetRequiredInstanceExtensions()
}

// CreateSurface makes the vulkan surface for the window
func (w *Window) CreateSurface(gp *GPU) (vk.Surface, error) {
	surfPtr, err := w.Glfw.CreateWindowSurface(gp.Instance, nil)
	if err != nil {
		return vk.NullSurface, errors.Wrap(err)
	}
	return vk.SurfaceFromPointer(surfPtr), nil
}

// ShouldClose returns whether the user has asked to close the window
func (w *Window) ShouldClose() bool {
	return w.Glfw.ShouldClose()
}

// FramebufferSize returns the current size of the window in pixels
func (w *Window) FramebufferSize() image.Point {
	width, height := w.Glfw.GetFramebufferSize()
	return image.Pt(width, height)
}

// Resized returns whether the framebuffer was resized since the last
// call, clearing the flag.
func (w *Window) Resized() bool {
	r := w.resized
	w.resized = false
	return r
}

// Destroy closes the window
func (w *Window) Destroy() {
	if w.Glfw == nil {
		return
	}
	w.Glfw.Destroy()
	w.Glfw = nil
}
