// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"encoding/binary"
	"testing"
	"testing/fstest"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spirvHeader returns a minimal header-only module: magic, version,
// generator, bound, schema.
func spirvHeader() []byte {
	code := make([]byte, 20)
	binary.LittleEndian.PutUint32(code[0:], SPIRVMagic)
	binary.LittleEndian.PutUint32(code[4:], 0x00010000)
	binary.LittleEndian.PutUint32(code[12:], 1)
	return code
}

func TestValidateSPIRV(t *testing.T) {
	assert.NoError(t, ValidateSPIRV(spirvHeader()))
	assert.Error(t, ValidateSPIRV(nil))
	assert.Error(t, ValidateSPIRV(spirvHeader()[:16]))
	assert.Error(t, ValidateSPIRV(append(spirvHeader(), 0)))

	bad := spirvHeader()
	binary.BigEndian.PutUint32(bad, SPIRVMagic)
	err := ValidateSPIRV(bad)
	assert.ErrorContains(t, err, "magic")
}

func TestCodeWords(t *testing.T) {
	words := CodeWords(spirvHeader())
	require.Len(t, words, 5)
	assert.Equal(t, uint32(SPIRVMagic), words[0])
	assert.Equal(t, uint32(0x00010000), words[1])
	assert.Equal(t, uint32(1), words[3])
}

func TestShaderOpenFSErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.spv": &fstest.MapFile{Data: []byte("not spir-v at all!!!")},
	}
	sh := &Shader{Name: "vert", Type: VertexShader}
	err := sh.OpenFS(nil, fsys, "missing.spv")
	assert.ErrorContains(t, err, "vert")
	assert.Empty(t, sh.File)

	err = sh.OpenFS(nil, fsys, "bad.spv")
	assert.ErrorContains(t, err, "magic")
	assert.Nil(t, sh.VkModule)
}

func TestModuleInfo(t *testing.T) {
	code := spirvHeader()
	mi := ModuleInfo(code)
	assert.Equal(t, vk.StructureTypeShaderModuleCreateInfo, mi.SType)
	assert.Equal(t, uint64(len(code)), mi.CodeSize)
	assert.Len(t, mi.PCode, len(code)/4)
}
