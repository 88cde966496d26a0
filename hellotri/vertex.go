// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hellotri

import (
	"encoding/binary"

	"cogentcore.org/hellotri/base/errors"
	"cogentcore.org/hellotri/vgpu"
	vk "github.com/goki/vulkan"
)

// Vertex is one vertex of the triangle, as laid out in the vertex buffer
type Vertex struct {
	Pos   [3]float32
	Color [3]float32
}

// VertexStride is the size of a [Vertex] in bytes
const VertexStride = 24

// TriangleVertices are the corners of the triangle, in clip space:
// red at the right, green at the left, blue at the middle.
var TriangleVertices = []Vertex{
	{Pos: [3]float32{1, -1, 0}, Color: [3]float32{1, 0, 0}},
	{Pos: [3]float32{-1, -1, 0}, Color: [3]float32{0, 1, 0}},
	{Pos: [3]float32{0, 1, 0}, Color: [3]float32{0, 0, 1}},
}

// TriangleIndices draw the triangle once
var TriangleIndices = []uint32{0, 1, 2}

// VertexBytes packs the vertices for the vertex buffer
func VertexBytes(vtx []Vertex) []byte {
	return errors.Must1(binary.Append(make([]byte, 0, len(vtx)*VertexStride), binary.LittleEndian, vtx))
}

// IndexBytes packs the indexes for the uint32 index buffer
func IndexBytes(idx []uint32) []byte {
	return errors.Must1(binary.Append(make([]byte, 0, len(idx)*4), binary.LittleEndian, idx))
}

// VertexAttrs returns the vertex input layout of [Vertex]:
// the position at location 0 and the color at location 1.
func VertexAttrs() []vgpu.VertexAttr {
	return []vgpu.VertexAttr{
		{Location: 0, Format: vk.FormatR32g32b32Sfloat, Offset: 0},
		{Location: 1, Format: vk.FormatR32g32b32Sfloat, Offset: 12},
	}
}
