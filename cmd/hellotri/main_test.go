// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/hellotri/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	fl := newFlags()
	root := newRootCmd(fl)
	require.NoError(t, root.ParseFlags([]string{"--width", "800", "--stage", "Resources", "--vsync=false"}))
	cfg, err := loadConfig(root, fl)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, config.StageResources, cfg.Stage)
	assert.False(t, cfg.VSync)
	assert.True(t, cfg.Pulse)
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte("width = 640\nheight = 480\nstage = \"swapchain\"\n"), 0o644))
	t.Setenv("HELLOTRI_HEIGHT", "400")

	fl := newFlags()
	root := newRootCmd(fl)
	require.NoError(t, root.ParseFlags([]string{"--stage", "device"}))
	cfg, err := loadConfig(root, fl)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
	assert.Equal(t, config.StageDevice, cfg.Stage)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	fl := newFlags()
	root := newRootCmd(fl)
	require.NoError(t, root.ParseFlags([]string{"--config", "missing.toml"}))
	_, err := loadConfig(root, fl)
	assert.Error(t, err)

	fl = newFlags()
	root = newRootCmd(fl)
	require.NoError(t, root.ParseFlags([]string{"--headless"}))
	_, err = loadConfig(root, fl)
	assert.ErrorContains(t, err, "headless")

	fl = newFlags()
	root = newRootCmd(fl)
	assert.Error(t, root.ParseFlags([]string{"--stage", "present"}))
}

func TestCmdErrorsWithoutUsage(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, sub := range []string{"info", "run"} {
		root := newRootCmd(newFlags())
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs([]string{sub, "--width", "0"})
		assert.ErrorContains(t, root.Execute(), "window size", sub)
		assert.NotContains(t, buf.String(), "Usage:", sub)
		assert.NotContains(t, buf.String(), "Error:", sub)
	}
}

func TestWatchNeedsShaderDir(t *testing.T) {
	t.Chdir(t.TempDir())
	fl := newFlags()
	root := newRootCmd(fl)
	require.NoError(t, root.ParseFlags([]string{"--watch"}))
	_, err := loadConfig(root, fl)
	assert.ErrorContains(t, err, "shader dir")

	fl = newFlags()
	root = newRootCmd(fl)
	require.NoError(t, root.ParseFlags([]string{"--watch", "--shaders", "shaders"}))
	cfg, err := loadConfig(root, fl)
	require.NoError(t, err)
	assert.Equal(t, "shaders", cfg.ShaderDir)
	assert.True(t, cfg.Watch)
}

func TestVersionCmd(t *testing.T) {
	root := newRootCmd(newFlags())
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "hellotri")
}
