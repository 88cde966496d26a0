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

func TestVars(t *testing.T) {
	vs := &Vars{}
	vr := vs.AddUniform("ColorMul", 0, VertexShader)
	assert.Equal(t, vk.DescriptorTypeUniformBuffer, vr.Type)
	assert.Equal(t, vk.ShaderStageVertexBit, vr.Shaders)
	vs.AddUniform("Params", 1, VertexShader, FragmentShader)

	got, err := vs.VarByName("Params")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Binding)
	assert.Equal(t, vk.ShaderStageVertexBit|vk.ShaderStageFragmentBit, got.Shaders)
	_, err = vs.VarByName("Nope")
	assert.Error(t, err)

	binds := vs.LayoutBindings()
	require.Len(t, binds, 2)
	assert.Equal(t, uint32(1), binds[1].Binding)
	assert.Equal(t, uint32(1), binds[1].DescriptorCount)
	assert.Equal(t, vk.ShaderStageFlags(vk.ShaderStageVertexBit|vk.ShaderStageFragmentBit), binds[1].StageFlags)

	sizes := vs.PoolSizes(2)
	require.Len(t, sizes, 1)
	assert.Equal(t, vk.DescriptorTypeUniformBuffer, sizes[0].Type)
	assert.Equal(t, uint32(4), sizes[0].DescriptorCount)

	assert.Equal(t, "0: ColorMul (stages 0x1)\n1: Params (stages 0x11)\n", vs.StringDoc())
}

func TestShaderTypes(t *testing.T) {
	assert.Equal(t, "FragmentShader", FragmentShader.String())
	assert.Equal(t, vk.ShaderStageFragmentBit, FragmentShader.StageFlags())
	assert.Len(t, ShaderTypesValues(), int(ShaderTypesN))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "B8g8r8a8Unorm", FormatString(vk.FormatB8g8r8a8Unorm))
	assert.Equal(t, "Fifo", PresentModeString(vk.PresentModeFifo))
	assert.Equal(t, 12, FormatSizes[vk.FormatR32g32b32Sfloat])
}
