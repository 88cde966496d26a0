// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"io/fs"
	"log/slog"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// VertexAttr describes one attribute of interleaved vertex data:
// the shader input location, its format, and its byte offset in the vertex.
type VertexAttr struct {
	Location int
	Format   vk.Format
	Offset   int
}

// Pipeline manages Shader program(s) and the fixed-function state
// for one kind of rendering (the pipeline state object), using the
// Vars and RenderPass of the System it belongs to.
type Pipeline struct {
	Name         string                        `desc:"unique name of this pipeline"`
	Sys          *System                       `desc:"system that we belong to and manages all shared resources"`
	Shaders      ordmap.Map[string, *Shader]   `desc:"shaders in order added -- should be execution order"`
	VertexStride int                           `desc:"byte size of one vertex in the single vertex buffer binding"`
	VertexAttrs  []VertexAttr                  `desc:"attributes of each vertex"`
	VkConfig     vk.GraphicsPipelineCreateInfo `desc:"vulkan pipeline configuration options"`
	VkPipeline   vk.Pipeline                   `desc:"the created vulkan pipeline"`
	VkCache      vk.PipelineCache              `desc:"cache"`
}

// AddShader adds Shader with given name and type to the pipeline
func (pl *Pipeline) AddShader(name string, typ ShaderTypes) *Shader {
	if sh, has := pl.Shaders.ValueByKeyTry(name); has {
		slog.Warn("vgpu.Pipeline AddShader: shader already exists", "shader", name, "pipeline", pl.Name)
		return sh
	}
	sh := &Shader{Name: name, Type: typ}
	pl.Shaders.Add(name, sh)
	return sh
}

// AddShaderFS adds Shader with given name and type to the pipeline,
// opening SPIR-V code from the given path in the file system
func (pl *Pipeline) AddShaderFS(name string, typ ShaderTypes, fsys fs.FS, path string) (*Shader, error) {
	sh := pl.AddShader(name, typ)
	return sh, sh.OpenFS(pl.Sys.Device.Device, fsys, path)
}

// ShaderByName returns Shader by name
func (pl *Pipeline) ShaderByName(name string) (*Shader, error) {
	sh, ok := pl.Shaders.ValueByKeyTry(name)
	if !ok {
		return nil, errors.Errorf("vgpu.Pipeline %q: shader %q not found", pl.Name, name)
	}
	return sh, nil
}

// FreeShaders is called after successful pipeline creation, to unload shader modules
// as they are no longer needed
func (pl *Pipeline) FreeShaders() {
	for _, kv := range pl.Shaders.Order {
		kv.Value.Free(pl.Sys.Device.Device)
	}
}

// Destroy frees the shaders and destroys the pipeline
func (pl *Pipeline) Destroy() {
	pl.FreeShaders()
	pl.DestroyPipeline()
}

// DestroyPipeline destroys the vulkan pipeline and cache
func (pl *Pipeline) DestroyPipeline() {
	if pl.VkCache != nil {
		vk.DestroyPipelineCache(pl.Sys.Device.Device, pl.VkCache, nil)
		pl.VkCache = nil
	}
	if pl.VkPipeline != nil {
		vk.DestroyPipeline(pl.Sys.Device.Device, pl.VkPipeline, nil)
		pl.VkPipeline = nil
	}
}

// Init initializes pipeline as part of given System
func (pl *Pipeline) Init(sy *System) {
	pl.Sys = sy
	pl.SetGraphicsDefaults()
}

// SetVertexInput sets the layout of the single interleaved vertex buffer
func (pl *Pipeline) SetVertexInput(stride int, attrs ...VertexAttr) {
	pl.VertexStride = stride
	pl.VertexAttrs = attrs
}

// VkVertexConfig returns the vertex input state for the vertex layout
func (pl *Pipeline) VkVertexConfig() *vk.PipelineVertexInputStateCreateInfo {
	cfg := &vk.PipelineVertexInputStateCreateInfo{
		SType: vk.StructureTypePipelineVertexInputStateCreateInfo,
	}
	if pl.VertexStride == 0 {
		return cfg
	}
	cfg.VertexBindingDescriptionCount = 1
	cfg.PVertexBindingDescriptions = []vk.VertexInputBindingDescription{{
		Binding:   0,
		Stride:    uint32(pl.VertexStride),
		InputRate: vk.VertexInputRateVertex,
	}}
	attrs := make([]vk.VertexInputAttributeDescription, len(pl.VertexAttrs))
	for i, va := range pl.VertexAttrs {
		attrs[i] = vk.VertexInputAttributeDescription{
			Location: uint32(va.Location),
			Binding:  0,
			Format:   va.Format,
			Offset:   uint32(va.Offset),
		}
	}
	cfg.VertexAttributeDescriptionCount = uint32(len(attrs))
	cfg.PVertexAttributeDescriptions = attrs
	return cfg
}

// Config makes the vulkan pipeline, once all the VkConfig options have
// been set using Set* methods, the shaders have been loaded, and the
// Vars and RenderPass of the System have been configured.
func (pl *Pipeline) Config() error {
	if pl.VkPipeline != nil {
		return nil
	}
	pl.ConfigStages()
	sy := pl.Sys
	pl.VkConfig.SType = vk.StructureTypeGraphicsPipelineCreateInfo
	pl.VkConfig.PVertexInputState = pl.VkVertexConfig()
	pl.VkConfig.Layout = sy.Vars.VkDescLayout
	pl.VkConfig.RenderPass = sy.RenderPass.VkClearPass
	pl.VkConfig.PMultisampleState = &vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: vk.SampleCount1Bit,
	}
	pl.VkConfig.PViewportState = &vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ScissorCount:  1,
		ViewportCount: 1,
	}

	var pipelineCache vk.PipelineCache
	ret := vk.CreatePipelineCache(sy.Device.Device, &vk.PipelineCacheCreateInfo{
		SType: vk.StructureTypePipelineCacheCreateInfo,
	}, nil, &pipelineCache)
	if err := NewError(ret); err != nil {
		return err
	}
	pl.VkCache = pipelineCache

	pipeline := make([]vk.Pipeline, 1)
	ret = vk.CreateGraphicsPipelines(sy.Device.Device, pl.VkCache, 1, []vk.GraphicsPipelineCreateInfo{pl.VkConfig}, nil, pipeline)
	if err := NewError(ret); err != nil {
		return err
	}
	pl.VkPipeline = pipeline[0]

	pl.FreeShaders() // not needed once built
	return nil
}

// Reload reopens all the shaders from their files in fsys and remakes
// the pipeline. The device must not be using the pipeline. If any shader
// fails to load, the existing pipeline is kept.
func (pl *Pipeline) Reload(fsys fs.FS) error {
	dev := pl.Sys.Device.Device
	for _, kv := range pl.Shaders.Order {
		sh := kv.Value
		if sh.File == "" {
			return errors.Errorf("vgpu.Pipeline %q: shader %q was not opened from a file", pl.Name, sh.Name)
		}
		if err := sh.OpenFS(dev, fsys, sh.File); err != nil {
			pl.FreeShaders()
			return err
		}
	}
	pl.DestroyPipeline()
	return pl.Config()
}

// ConfigStages configures the shader stages
func (pl *Pipeline) ConfigStages() {
	ns := pl.Shaders.Len()
	pl.VkConfig.StageCount = uint32(ns)
	stgs := make([]vk.PipelineShaderStageCreateInfo, ns)
	for i, kv := range pl.Shaders.Order {
		stgs[i] = vk.PipelineShaderStageCreateInfo{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  kv.Value.Type.StageFlags(),
			Module: kv.Value.VkModule,
			PName:  "main\x00",
		}
	}
	pl.VkConfig.PStages = stgs
}

//////////////////////////////////////////////////////////////
// Set graphics options

// SetGraphicsDefaults configures all the default settings for a
// graphics rendering pipeline
func (pl *Pipeline) SetGraphicsDefaults() {
	pl.SetDynamicState()
	pl.SetTopology(TriangleList, false)
	pl.SetRasterization(vk.PolygonModeFill, vk.CullModeBackBit, vk.FrontFaceCounterClockwise, 1.0)
	pl.SetColorBlend(false)
}

// SetDynamicState sets the viewport and scissor as dynamic state,
// so the pipeline does not depend on the swapchain size
func (pl *Pipeline) SetDynamicState() {
	pl.VkConfig.PDynamicState = &vk.PipelineDynamicStateCreateInfo{
		SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: 2,
		PDynamicStates: []vk.DynamicState{
			vk.DynamicStateScissor,
			vk.DynamicStateViewport,
		},
	}
}

// SetTopology sets the topology of vertex position data.
// TriangleList is the default.
func (pl *Pipeline) SetTopology(topo Topologies, restartEnable bool) {
	rese := vk.False
	if restartEnable {
		rese = vk.True
	}
	pl.VkConfig.PInputAssemblyState = &vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               vk.PrimitiveTopology(topo),
		PrimitiveRestartEnable: vk.Bool32(rese),
	}
}

// SetRasterization sets various options for how to rasterize shapes:
// Defaults are: vk.PolygonModeFill, vk.CullModeBackBit, vk.FrontFaceCounterClockwise, 1.0
func (pl *Pipeline) SetRasterization(polygonMode vk.PolygonMode, cullMode vk.CullModeFlagBits, frontFace vk.FrontFace, lineWidth float32) {
	pl.VkConfig.PRasterizationState = &vk.PipelineRasterizationStateCreateInfo{
		SType:       vk.StructureTypePipelineRasterizationStateCreateInfo,
		PolygonMode: polygonMode,
		CullMode:    vk.CullModeFlags(cullMode),
		FrontFace:   frontFace,
		LineWidth:   lineWidth,
	}
}

// SetCullMode sets which faces are culled: vk.CullModeNone draws both
func (pl *Pipeline) SetCullMode(cm vk.CullModeFlagBits) {
	pl.VkConfig.PRasterizationState.CullMode = vk.CullModeFlags(cm)
}

// SetFrontFace sets the winding order for what counts as a front face
// true = CCW, false = CW
func (pl *Pipeline) SetFrontFace(ccw bool) {
	cm := vk.FrontFaceClockwise
	if ccw {
		cm = vk.FrontFaceCounterClockwise
	}
	pl.VkConfig.PRasterizationState.FrontFace = cm
}

// SetColorBlend determines the color blending function:
// either 1-source alpha (alphaBlend) or no blending:
// new color overwrites old.
func (pl *Pipeline) SetColorBlend(alphaBlend bool) {
	var cb vk.PipelineColorBlendAttachmentState
	cb.ColorWriteMask = 0xF

	if alphaBlend {
		cb.BlendEnable = vk.True
		cb.SrcColorBlendFactor = vk.BlendFactorOne
		cb.DstColorBlendFactor = vk.BlendFactorOneMinusSrcAlpha
		cb.ColorBlendOp = vk.BlendOpAdd
		cb.SrcAlphaBlendFactor = vk.BlendFactorOne
		cb.DstAlphaBlendFactor = vk.BlendFactorZero
		cb.AlphaBlendOp = vk.BlendOpAdd
	} else {
		cb.BlendEnable = vk.False
	}

	pl.VkConfig.PColorBlendState = &vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   vk.False,
		AttachmentCount: 1,
		PAttachments:    []vk.PipelineColorBlendAttachmentState{cb},
	}
}

////////////////////////////////////////////////////////
// Graphics render

// BindPipeline adds commands to the given command buffer to bind
// this pipeline to command buffer.
func (pl *Pipeline) BindPipeline(cmd vk.CommandBuffer) {
	vk.CmdBindPipeline(cmd, vk.PipelineBindPointGraphics, pl.VkPipeline)
}

// BindVertex binds the vertex buffer and the uint32 index buffer, if non-nil
func (pl *Pipeline) BindVertex(cmd vk.CommandBuffer, vtx, idx *Buffer) {
	vk.CmdBindVertexBuffers(cmd, 0, 1, []vk.Buffer{vtx.Buffer}, []vk.DeviceSize{0})
	if idx != nil {
		vk.CmdBindIndexBuffer(cmd, idx.Buffer, 0, vk.IndexTypeUint32)
	}
}

// Draw adds CmdDraw command to the given command buffer
// BindPipeline must have been called before this.
func (pl *Pipeline) Draw(cmd vk.CommandBuffer, vtxCount, instanceCount, firstVtx, firstInstance int) {
	vk.CmdDraw(cmd, uint32(vtxCount), uint32(instanceCount), uint32(firstVtx), uint32(firstInstance))
}

// DrawIndexed adds a CmdDrawIndexed command for one instance of
// idxCount indexes, using the bound index buffer.
func (pl *Pipeline) DrawIndexed(cmd vk.CommandBuffer, idxCount int) {
	vk.CmdDrawIndexed(cmd, uint32(idxCount), 1, 0, 0, 0)
}
