// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineSettings(t *testing.T) {
	sy := &System{Name: "test"}
	pl := sy.NewPipeline("tri")
	got, err := sy.PipelineByName("tri")
	require.NoError(t, err)
	assert.Same(t, pl, got)
	_, err = sy.PipelineByName("other")
	assert.Error(t, err)
	sy.NewPipeline("lines")
	assert.Equal(t, []string{"tri", "lines"}, sy.Pipelines.Keys())
	assert.NotPanics(t, sy.Destroy)
	assert.Zero(t, sy.Pipelines.Len())

	assert.Equal(t, vk.PrimitiveTopologyTriangleList, pl.VkConfig.PInputAssemblyState.Topology)
	assert.Equal(t, vk.CullModeFlags(vk.CullModeBackBit), pl.VkConfig.PRasterizationState.CullMode)
	assert.Equal(t, vk.FrontFaceCounterClockwise, pl.VkConfig.PRasterizationState.FrontFace)
	assert.Equal(t, uint32(2), pl.VkConfig.PDynamicState.DynamicStateCount)

	pl.SetCullMode(vk.CullModeNone)
	pl.SetFrontFace(false)
	pl.SetTopology(TriangleStrip, true)
	assert.Equal(t, vk.CullModeFlags(vk.CullModeNone), pl.VkConfig.PRasterizationState.CullMode)
	assert.Equal(t, vk.FrontFaceClockwise, pl.VkConfig.PRasterizationState.FrontFace)
	assert.Equal(t, vk.PrimitiveTopologyTriangleStrip, pl.VkConfig.PInputAssemblyState.Topology)
	assert.Equal(t, "TriangleStrip", TriangleStrip.String())
	assert.Equal(t, vk.Bool32(vk.True), pl.VkConfig.PInputAssemblyState.PrimitiveRestartEnable)

	pl.SetColorBlend(true)
	assert.Equal(t, vk.Bool32(vk.True), pl.VkConfig.PColorBlendState.PAttachments[0].BlendEnable)
}

func TestPipelineShaders(t *testing.T) {
	pl := &Pipeline{Name: "tri"}
	vs := pl.AddShader("vert", VertexShader)
	fs := pl.AddShader("frag", FragmentShader)
	assert.Same(t, vs, pl.AddShader("vert", VertexShader))
	require.Equal(t, 2, pl.Shaders.Len())
	assert.Equal(t, []string{"vert", "frag"}, pl.Shaders.Keys())

	pl.ConfigStages()
	assert.Equal(t, uint32(2), pl.VkConfig.StageCount)
	assert.Equal(t, vk.ShaderStageVertexBit, pl.VkConfig.PStages[0].Stage)
	assert.Equal(t, vk.ShaderStageFragmentBit, pl.VkConfig.PStages[1].Stage)

	got, err := pl.ShaderByName("frag")
	require.NoError(t, err)
	assert.Same(t, fs, got)
	_, err = pl.ShaderByName("geom")
	assert.Error(t, err)
}

func TestVertexConfig(t *testing.T) {
	pl := &Pipeline{}
	cfg := pl.VkVertexConfig()
	assert.Zero(t, cfg.VertexBindingDescriptionCount)

	pl.SetVertexInput(24,
		VertexAttr{Location: 0, Format: vk.FormatR32g32b32Sfloat, Offset: 0},
		VertexAttr{Location: 1, Format: vk.FormatR32g32b32Sfloat, Offset: 12})
	cfg = pl.VkVertexConfig()
	require.Equal(t, uint32(1), cfg.VertexBindingDescriptionCount)
	assert.Equal(t, uint32(24), cfg.PVertexBindingDescriptions[0].Stride)
	assert.Equal(t, vk.VertexInputRateVertex, cfg.PVertexBindingDescriptions[0].InputRate)
	require.Equal(t, uint32(2), cfg.VertexAttributeDescriptionCount)
	assert.Equal(t, uint32(1), cfg.PVertexAttributeDescriptions[1].Location)
	assert.Equal(t, uint32(12), cfg.PVertexAttributeDescriptions[1].Offset)
}
