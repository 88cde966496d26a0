// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// Var specifies a resource that shaders access through a descriptor:
// its binding number, its descriptor type, and the shader stages that use it.
type Var struct {
	Name    string                 `desc:"variable name, as used in the shader"`
	Binding int                    `desc:"binding number within set 0, the layout(binding = n) in the shader"`
	Type    vk.DescriptorType      `desc:"descriptor type"`
	Shaders vk.ShaderStageFlagBits `desc:"bit flags for the shader stages that access this variable"`
}

func (vr *Var) String() string {
	return fmt.Sprintf("%d: %s (stages %#x)", vr.Binding, vr.Name, uint32(vr.Shaders))
}

// Vars is the layout of the resources that the shaders of a pipeline
// access (the root signature), along with the descriptor sets that bind
// actual buffers to them: one set per frame in flight, so a frame's
// resources can be updated while another frame is still being rendered.
type Vars struct {
	Vars         []*Var                 `desc:"variables, in binding order"`
	Dev          vk.Device              `desc:"device the descriptors belong to"`
	VkSetLayout  vk.DescriptorSetLayout `desc:"the layout of descriptor set 0"`
	VkDescLayout vk.PipelineLayout      `desc:"the pipeline layout, holding the set layout"`
	VkDescPool   vk.DescriptorPool      `desc:"pool the descriptor sets are allocated from"`
	Sets         []vk.DescriptorSet     `desc:"descriptor sets, one per frame in flight"`
}

// AddUniform adds a uniform buffer variable at given binding,
// accessed by the given shader stages.
func (vs *Vars) AddUniform(name string, binding int, shaders ...ShaderTypes) *Var {
	vr := &Var{Name: name, Binding: binding, Type: vk.DescriptorTypeUniformBuffer}
	for _, sh := range shaders {
		vr.Shaders |= sh.StageFlags()
	}
	vs.Vars = append(vs.Vars, vr)
	return vr
}

// VarByName returns the variable with the given name
func (vs *Vars) VarByName(name string) (*Var, error) {
	for _, vr := range vs.Vars {
		if vr.Name == name {
			return vr, nil
		}
	}
	return nil, errors.Errorf("vgpu.Vars: variable named %q not found", name)
}

// LayoutBindings returns the descriptor set layout bindings for the vars
func (vs *Vars) LayoutBindings() []vk.DescriptorSetLayoutBinding {
	binds := make([]vk.DescriptorSetLayoutBinding, len(vs.Vars))
	for i, vr := range vs.Vars {
		binds[i] = vk.DescriptorSetLayoutBinding{
			Binding:         uint32(vr.Binding),
			DescriptorType:  vr.Type,
			DescriptorCount: 1,
			StageFlags:      vk.ShaderStageFlags(vr.Shaders),
		}
	}
	return binds
}

// PoolSizes returns the number of descriptors of each type
// needed for nsets descriptor sets.
func (vs *Vars) PoolSizes(nsets int) []vk.DescriptorPoolSize {
	var sizes []vk.DescriptorPoolSize
	for _, vr := range vs.Vars {
		found := false
		for i := range sizes {
			if sizes[i].Type == vr.Type {
				sizes[i].DescriptorCount += uint32(nsets)
				found = true
				break
			}
		}
		if !found {
			sizes = append(sizes, vk.DescriptorPoolSize{Type: vr.Type, DescriptorCount: uint32(nsets)})
		}
	}
	return sizes
}

// Config makes the set layout, the pipeline layout, the pool,
// and nsets descriptor sets.
func (vs *Vars) Config(dev vk.Device, nsets int) error {
	vs.Dev = dev
	binds := vs.LayoutBindings()
	var setLayout vk.DescriptorSetLayout
	ret := vk.CreateDescriptorSetLayout(dev, &vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(binds)),
		PBindings:    binds,
	}, nil, &setLayout)
	if err := NewError(ret); err != nil {
		return err
	}
	vs.VkSetLayout = setLayout

	var pipelineLayout vk.PipelineLayout
	ret = vk.CreatePipelineLayout(dev, &vk.PipelineLayoutCreateInfo{
		SType:          vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount: 1,
		PSetLayouts:    []vk.DescriptorSetLayout{vs.VkSetLayout},
	}, nil, &pipelineLayout)
	if err := NewError(ret); err != nil {
		return err
	}
	vs.VkDescLayout = pipelineLayout

	if len(vs.Vars) == 0 || nsets <= 0 {
		return nil
	}
	sizes := vs.PoolSizes(nsets)
	var pool vk.DescriptorPool
	ret = vk.CreateDescriptorPool(dev, &vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		PoolSizeCount: uint32(len(sizes)),
		PPoolSizes:    sizes,
		MaxSets:       uint32(nsets),
	}, nil, &pool)
	if err := NewError(ret); err != nil {
		return err
	}
	vs.VkDescPool = pool

	layouts := make([]vk.DescriptorSetLayout, nsets)
	for i := range layouts {
		layouts[i] = vs.VkSetLayout
	}
	vs.Sets = make([]vk.DescriptorSet, nsets)
	ret = vk.AllocateDescriptorSets(dev, &vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     vs.VkDescPool,
		DescriptorSetCount: uint32(nsets),
		PSetLayouts:        layouts,
	}, &vs.Sets[0])
	return NewError(ret)
}

// BindUniform points the variable in the given descriptor set at the buffer
func (vs *Vars) BindUniform(set int, vr *Var, buf *Buffer) error {
	if set < 0 || set >= len(vs.Sets) {
		return errors.Errorf("vgpu.Vars.BindUniform: set %d out of range [0,%d)", set, len(vs.Sets))
	}
	if buf.Type != UniformBuff {
		return errors.Errorf("vgpu.Vars.BindUniform: %s is a %s, not a UniformBuff", vr.Name, buf.Type)
	}
	vk.UpdateDescriptorSets(vs.Dev, 1, []vk.WriteDescriptorSet{{
		SType:           vk.StructureTypeWriteDescriptorSet,
		DstSet:          vs.Sets[set],
		DstBinding:      uint32(vr.Binding),
		DescriptorCount: 1,
		DescriptorType:  vr.Type,
		PBufferInfo: []vk.DescriptorBufferInfo{{
			Buffer: buf.Buffer,
			Offset: 0,
			Range:  vk.DeviceSize(buf.Size),
		}},
	}}, 0, nil)
	return nil
}

// Bind records binding of the given descriptor set for graphics
func (vs *Vars) Bind(cmd vk.CommandBuffer, set int) {
	vk.CmdBindDescriptorSets(cmd, vk.PipelineBindPointGraphics, vs.VkDescLayout,
		0, 1, []vk.DescriptorSet{vs.Sets[set]}, 0, nil)
}

// StringDoc returns a listing of the variables
func (vs *Vars) StringDoc() string {
	var sb strings.Builder
	for _, vr := range vs.Vars {
		sb.WriteString(vr.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Destroy destroys the pool (freeing the sets) and the layouts
func (vs *Vars) Destroy() {
	if vs.VkDescPool != nil {
		vk.DestroyDescriptorPool(vs.Dev, vs.VkDescPool, nil)
		vs.VkDescPool = nil
	}
	vs.Sets = nil
	if vs.VkDescLayout != nil {
		vk.DestroyPipelineLayout(vs.Dev, vs.VkDescLayout, nil)
		vs.VkDescLayout = nil
	}
	if vs.VkSetLayout != nil {
		vk.DestroyDescriptorSetLayout(vs.Dev, vs.VkSetLayout, nil)
		vs.VkSetLayout = nil
	}
}
