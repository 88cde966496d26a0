// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"image"
	"testing"

	"github.com/Masterminds/semver/v3"
	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckErr(t *testing.T) {
	f := func() (err error) {
		defer CheckErr(&err)
		IfPanic(NewError(vk.ErrorDeviceLost))
		return nil
	}
	err := f()
	assert.ErrorContains(t, err, "vulkan error")
	assert.NoError(t, NewError(vk.Success))
}

func TestDebugReport(t *testing.T) {
	var cb vk.DebugReportCallbackFunc = debugReport
	ret := cb(vk.DebugReportFlags(vk.DebugReportWarningBit), 0, 0, 0, 7, "layer", "msg", nil)
	assert.Equal(t, vk.Bool32(vk.False), ret)
	assert.NotNil(t, debugReportInfo().PfnCallback)
}

func TestImageFormat(t *testing.T) {
	im := NewImageFormat(640, 480, vk.FormatR8g8b8a8Unorm)
	w, h := im.Size32()
	assert.Equal(t, uint32(640), w)
	assert.Equal(t, uint32(480), h)
	assert.Equal(t, image.Rect(0, 0, 640, 480), im.Bounds())
	assert.Equal(t, 4, im.BytesPerPixel())
	assert.Contains(t, im.String(), "640x480")
}

func TestGPU(t *testing.T) {
	t.Skip("Need GPU and display on CI")
	require.NoError(t, Init())
	defer Terminate()
	gp := NewGPU()
	c, err := semver.NewConstraint(">= 1.0")
	require.NoError(t, err)
	gp.MinAPIVersion = c
	require.NoError(t, gp.Config("test"))
	defer gp.Destroy()
	ads, err := gp.Adapters()
	require.NoError(t, err)
	assert.NotEmpty(t, ads)
}
