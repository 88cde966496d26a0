// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"io/fs"
	"os"
	"strings"
	"testing"

	"cogentcore.org/hellotri/vgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSources(t *testing.T) {
	for _, f := range []string{VertexFile, FragmentFile} {
		src, err := os.ReadFile(strings.TrimSuffix(f, ".spv"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(src), "#version 450"), f)
	}
}

func TestContent(t *testing.T) {
	for _, f := range []string{VertexFile, FragmentFile} {
		code, err := fs.ReadFile(Content, f)
		require.NoError(t, err, f)
		assert.NoError(t, vgpu.ValidateSPIRV(code), f)
		words := vgpu.CodeWords(code)
		assert.Greater(t, int(words[3]), 1, "id bound")
	}
	matches, err := fs.Glob(Content, "*.spv")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}
