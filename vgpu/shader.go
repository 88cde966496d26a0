// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"encoding/binary"
	"io/fs"

	"cogentcore.org/hellotri/base/errors"
	vk "github.com/goki/vulkan"
)

// SPIRVMagic is the first word of every SPIR-V module
const SPIRVMagic = 0x07230203

// Shader manages a single Shader program
type Shader struct {
	Name     string          `desc:"name of the shader"`
	Type     ShaderTypes     `desc:"type of shader"`
	File     string          `desc:"path of the SPIR-V file within the file system it was opened from, if any"`
	VkModule vk.ShaderModule `desc:"vulkan shader module, which is freed once the pipeline is made"`
}

// OpenFS loads the compiled SPIR-V code of the shader from the given
// path in the file system
func (sh *Shader) OpenFS(dev vk.Device, fsys fs.FS, path string) error {
	code, err := fs.ReadFile(fsys, path)
	if err != nil {
		return errors.Errorf("vgpu.Shader %q: %w", sh.Name, err)
	}
	sh.File = path
	return sh.OpenCode(dev, code)
}

// OpenCode makes the shader module from the given SPIR-V code
func (sh *Shader) OpenCode(dev vk.Device, code []byte) error {
	if err := ValidateSPIRV(code); err != nil {
		return errors.Errorf("vgpu.Shader %q: %w", sh.Name, err)
	}
	sh.Free(dev)
	var module vk.ShaderModule
	ret := vk.CreateShaderModule(dev, ModuleInfo(code), nil, &module)
	if err := NewError(ret); err != nil {
		return err
	}
	sh.VkModule = module
	return nil
}

// ModuleInfo returns the create info for a shader module
// with the given SPIR-V code
func ModuleInfo(code []byte) *vk.ShaderModuleCreateInfo {
	return &vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint64(len(code)),
		PCode:    CodeWords(code),
	}
}

// Free deletes the shader module, which can be done
// after the pipeline is made
func (sh *Shader) Free(dev vk.Device) {
	if sh.VkModule == nil {
		return
	}
	vk.DestroyShaderModule(dev, sh.VkModule, nil)
	sh.VkModule = nil
}

// ValidateSPIRV returns an error if the code is not plausibly a SPIR-V
// module: it must be a whole number of 32 bit words, at least a header
// of 5 words, starting with [SPIRVMagic].
func ValidateSPIRV(code []byte) error {
	if len(code) < 20 {
		return errors.Errorf("SPIR-V code too short: %d bytes", len(code))
	}
	if len(code)%4 != 0 {
		return errors.Errorf("SPIR-V code size %d is not a multiple of 4", len(code))
	}
	if magic := binary.LittleEndian.Uint32(code); magic != SPIRVMagic {
		return errors.Errorf("SPIR-V magic number %#08x should be %#08x", magic, SPIRVMagic)
	}
	return nil
}

// CodeWords returns the code as the 32 bit words that vulkan takes
func CodeWords(code []byte) []uint32 {
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	return words
}
