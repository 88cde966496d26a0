// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders holds the triangle shaders. The GLSL sources are
// compiled to SPIR-V with glslc, and the compiled files are built
// into the program as [Content].
package shaders

import "embed"

//go:generate glslc -fshader-stage=vertex triangle.vert -o triangle.vert.spv
//go:generate glslc -fshader-stage=fragment triangle.frag -o triangle.frag.spv

// Content has the compiled SPIR-V shaders
//
//go:embed *.spv
var Content embed.FS

const (
	// VertexFile is the compiled vertex shader
	VertexFile = "triangle.vert.spv"

	// FragmentFile is the compiled fragment shader
	FragmentFile = "triangle.frag.spv"
)
