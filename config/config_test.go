// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/hellotri/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "Hello Triangle", cfg.Title)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, 2, cfg.BackBuffers)
	assert.Equal(t, StageRender, cfg.Stage)
	assert.Equal(t, ">= 1.0", cfg.MinAPIVersion)
	assert.Empty(t, cfg.ShaderDir)
	assert.True(t, cfg.VSync)
	assert.True(t, cfg.Pulse)
	assert.False(t, cfg.Debug)
	assert.Equal(t, []float32{0.1, 0.1, 0.1, 1}, cfg.ClearColor)
	assert.Equal(t, [4]float32{0.1, 0.1, 0.1, 1}, cfg.Clear())
	assert.Equal(t, 10.0, cfg.FPSSeconds)
	require.NoError(t, cfg.Validate())
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "hellotri.toml")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestOpen(t *testing.T) {
	fn := writeFile(t, `
title = "Tri"
width = 640
stage = "swapchain"
clear_color = [0.0, 0.0, 0.5, 1.0]
`)
	cfg := Default()
	require.NoError(t, Open(cfg, fn))
	assert.Equal(t, "Tri", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, StageSwapchain, cfg.Stage)
	assert.Equal(t, []float32{0, 0, 0.5, 1}, cfg.ClearColor)

	fn = writeFile(t, `stage = "draw"`)
	errors.Log(Open(cfg, fn))
	assert.Equal(t, StageSwapchain, cfg.Stage)
}

func TestSaveOpen(t *testing.T) {
	cfg := Default()
	cfg.Stage = StageResources
	cfg.Width = 800
	fn := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, Save(cfg, fn))

	got := &Config{}
	require.NoError(t, Open(got, fn))
	assert.Equal(t, cfg, got)
}

func TestYAML(t *testing.T) {
	assert.True(t, IsYAML("a/b.yaml"))
	assert.True(t, IsYAML("b.YML"))
	assert.False(t, IsYAML("b.toml"))

	fn := filepath.Join(t.TempDir(), "hellotri.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("width: 300\nstage: resources\nvsync: false\n"), 0666))
	cfg := Default()
	require.NoError(t, Open(cfg, fn))
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, StageResources, cfg.Stage)
	assert.False(t, cfg.VSync)

	cfg.Title = "Saved"
	out := filepath.Join(t.TempDir(), "out.yml")
	require.NoError(t, Save(cfg, out))
	got := &Config{}
	require.NoError(t, Open(got, out))
	assert.Equal(t, cfg, got)
}

func TestLoadPrecedence(t *testing.T) {
	fn := writeFile(t, "width = 640\nheight = 480\n")
	t.Setenv("HELLOTRI_HEIGHT", "360")
	t.Setenv("HELLOTRI_STAGE", "resources")
	t.Setenv("HELLOTRI_CLEAR_COLOR", "1,0,0,1")

	cfg, err := Load(fn, true)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 360, cfg.Height)
	assert.Equal(t, StageResources, cfg.Stage)
	assert.Equal(t, []float32{1, 0, 0, 1}, cfg.ClearColor)
	assert.Equal(t, "Hello Triangle", cfg.Title)
}

func TestLoadMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.toml")
	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Width)

	_, err = Load(missing, true)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestApplyEnvError(t *testing.T) {
	t.Setenv("HELLOTRI_WIDTH", "wide")
	assert.Error(t, ApplyEnv(Default()))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	cfg.BackBuffers = 4
	cfg.MinAPIVersion = "not a version"
	cfg.ClearColor = []float32{1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "back buffers")
	assert.Contains(t, err.Error(), "min api version")
	assert.Contains(t, err.Error(), "clear color")

	cfg = Default()
	cfg.Headless = true
	assert.ErrorContains(t, cfg.Validate(), "headless")
	cfg.Stage = StageDevice
	assert.NoError(t, cfg.Validate())

	cfg = Default()
	cfg.Watch = true
	assert.ErrorContains(t, cfg.Validate(), "watch needs a shader dir")
	cfg.ShaderDir = "shaders"
	assert.NoError(t, cfg.Validate())
}

func TestStage(t *testing.T) {
	assert.Len(t, StageValues(), int(StageN))
	for _, s := range StageValues() {
		p, err := ParseStage(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, p)
	}
	s, err := ParseStage(" Render ")
	require.NoError(t, err)
	assert.Equal(t, StageRender, s)

	_, err = ParseStage("present")
	assert.Error(t, err)

	assert.True(t, StageRender.Includes(StageDevice))
	assert.True(t, StageSwapchain.Includes(StageSwapchain))
	assert.False(t, StageResources.Includes(StageRender))
	assert.False(t, Stage(9).IsValid())
	assert.Equal(t, "render", StageRender.String())
	assert.Contains(t, StageSwapchain.Desc(), "swapchain")

	var st Stage
	require.NoError(t, st.Set("resources"))
	assert.Equal(t, StageResources, st)
	assert.Equal(t, "stage", st.Type())
	assert.ErrorContains(t, st.Set("draw"), "device, swapchain, resources, render")
	assert.Equal(t, StageResources, st)
	b, err := StageDevice.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "device", string(b))
}
