// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"testing"
	"unsafe"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNameInfoLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout checked on 64 bit platforms")
	}
	var info objectNameInfo
	assert.Equal(t, uintptr(40), unsafe.Sizeof(info))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(info.pNext))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(info.objectType))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(info.handle))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(info.name))

	name := append([]byte("Hello Triangle Vertex Buffer"), 0)
	ni := newObjectNameInfo(ObjectBuffer, 42, name)
	assert.Equal(t, uint32(1000128000), ni.sType)
	assert.Nil(t, ni.pNext)
	assert.Equal(t, ObjectTypes(9), ni.objectType)
	assert.Equal(t, uint64(42), ni.handle)
	assert.Equal(t, &name[0], ni.name)
}

func TestHandle(t *testing.T) {
	assert.Equal(t, uint64(0), Handle(vk.NullBuffer))
	assert.Equal(t, uint64(0x1234), Handle(uint64(0x1234)))
	assert.Equal(t, uint64(7), Handle(uint32(7)))
	x := 5
	p := &x
	assert.Equal(t, uint64(uintptr(unsafe.Pointer(p))), Handle(p))
}

func TestSetNameWithoutDebugUtils(t *testing.T) {
	dv := &Device{}
	assert.False(t, dv.CanName())
	require.NotPanics(t, func() {
		dv.SetName(ObjectPipelineLayout, 1, "Hello Triangle Root Signature")
	})
	assert.NotPanics(t, dv.Destroy)
	assert.False(t, dv.CanName())
}
