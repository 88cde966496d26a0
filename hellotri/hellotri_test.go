// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hellotri

import (
	"context"
	"encoding/binary"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/hellotri/base/errors"
	"cogentcore.org/hellotri/config"
	"cogentcore.org/hellotri/shaders"
	"cogentcore.org/hellotri/vgpu"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float32At(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
}

func TestVertexBytes(t *testing.T) {
	b := VertexBytes(TriangleVertices)
	require.Len(t, b, 3*VertexStride)
	// vertex 0: pos (1,-1,0), color red
	assert.Equal(t, float32(1), float32At(b, 0))
	assert.Equal(t, float32(-1), float32At(b, 1))
	assert.Equal(t, float32(1), float32At(b, 3))
	assert.Equal(t, float32(0), float32At(b, 4))
	// vertex 2: pos (0,1,0), color blue
	assert.Equal(t, float32(1), float32At(b, 13))
	assert.Equal(t, float32(1), float32At(b, 17))

	attrs := VertexAttrs()
	require.Len(t, attrs, 2)
	assert.Equal(t, 12, attrs[1].Offset)
	assert.Equal(t, 1, attrs[1].Location)
}

func TestIndexBytes(t *testing.T) {
	b := IndexBytes(TriangleIndices)
	require.Len(t, b, 12)
	for i := range TriangleIndices {
		idx := binary.LittleEndian.Uint32(b[i*4:])
		assert.Less(t, int(idx), len(TriangleVertices))
	}
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(b[8:]))
}

func TestPulse(t *testing.T) {
	for ms := 0; ms < 6000; ms += 37 {
		cm := Pulse(time.Duration(ms) * time.Millisecond)
		for _, c := range cm.Mul {
			assert.GreaterOrEqual(t, c, float32(0))
			assert.LessOrEqual(t, c, float32(1))
		}
	}
	cm := Pulse(0)
	assert.InDelta(t, 0.5, cm.Mul[0], 1e-6)
	assert.InDelta(t, 0.5+0.5*math.Sin(2*math.Pi/3), cm.Mul[1], 1e-5)

	quarter := Pulse(PulsePeriod / 4)
	assert.InDelta(t, 1, quarter.Mul[0], 1e-5)
	assert.InDelta(t, cm.Mul[0], Pulse(PulsePeriod).Mul[0], 1e-5)
}

func TestColorMulBytes(t *testing.T) {
	b := ColorMul{Mul: [3]float32{0.25, 0.5, 1}}.Bytes()
	require.Len(t, b, 16)
	assert.Equal(t, float32(0.25), float32At(b, 0))
	assert.Equal(t, float32(1), float32At(b, 2))
	assert.Equal(t, float32(0), float32At(b, 3))
	assert.LessOrEqual(t, len(White.Bytes()), ConstantBufferSize)
}

func TestIsShaderEvent(t *testing.T) {
	assert.True(t, IsShaderEvent(fsnotify.Event{Name: "shaders/triangle.vert.spv", Op: fsnotify.Write}))
	assert.True(t, IsShaderEvent(fsnotify.Event{Name: "triangle.frag.spv", Op: fsnotify.Create}))
	assert.False(t, IsShaderEvent(fsnotify.Event{Name: "triangle.frag.spv", Op: fsnotify.Chmod}))
	assert.False(t, IsShaderEvent(fsnotify.Event{Name: "triangle.frag", Op: fsnotify.Write}))
}

func TestWatchShaders(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := WatchShaders(ctx, dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "triangle.vert.spv"), []byte("x"), 0o644))
	select {
	case name := <-ch:
		assert.Equal(t, "triangle.vert.spv", filepath.Base(name))
	case <-time.After(5 * time.Second):
		t.Fatal("no shader event")
	}

	_, err = WatchShaders(ctx, filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestSetupCanceled(t *testing.T) {
	cfg := config.Default()
	a := New(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := a.Setup(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, a.GPU)
	assert.NotPanics(t, a.Release)
	assert.NoError(t, a.Run(context.Background()))
}

func TestSetupFailsMidway(t *testing.T) {
	cfg := config.Default()
	a := New(cfg)
	var ran []config.Stage
	step := func(st config.Stage, run func() error) setupStep {
		return setupStep{st, func(ctx context.Context) error {
			ran = append(ran, st)
			return run()
		}}
	}
	err := a.runSteps(context.Background(), []setupStep{
		step(config.StageDevice, func() error {
			a.GPU = vgpu.NewGPU()
			a.Device = &vgpu.Device{}
			a.Surface = &vgpu.Surface{}
			a.System = &vgpu.System{}
			return nil
		}),
		step(config.StageSwapchain, func() error {
			return errors.New("the swapchain needs a window")
		}),
		step(config.StageResources, func() error {
			t.Error("resources ran after a failed step")
			return nil
		}),
	})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "setup swapchain: the swapchain needs a window ("))
	assert.Equal(t, 1, strings.Count(err.Error(), " ("))
	assert.Equal(t, []config.Stage{config.StageDevice, config.StageSwapchain}, ran)

	assert.NotPanics(t, a.Release)
	assert.Nil(t, a.GPU)
	assert.Nil(t, a.Device)
	assert.Nil(t, a.Surface)
	assert.Nil(t, a.System)
	assert.Nil(t, a.Window)
	assert.NotPanics(t, a.Release)
}

func TestSetupStopsAtStage(t *testing.T) {
	cfg := config.Default()
	cfg.Stage = config.StageSwapchain
	a := New(cfg)
	n := 0
	count := func(ctx context.Context) error { n++; return nil }
	err := a.runSteps(context.Background(), []setupStep{
		{config.StageDevice, count},
		{config.StageSwapchain, count},
		{config.StageResources, count},
		{config.StageRender, count},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNameResourcesWithoutDebug(t *testing.T) {
	a := New(config.Default())
	a.Device = &vgpu.Device{}
	assert.False(t, a.Device.CanName())
	assert.NotPanics(t, a.nameResources)
}

func TestShaderFS(t *testing.T) {
	cfg := config.Default()
	for _, f := range []string{shaders.VertexFile, shaders.FragmentFile} {
		code, err := fs.ReadFile(ShaderFS(cfg), f)
		require.NoError(t, err, f)
		assert.NoError(t, vgpu.ValidateSPIRV(code))
	}

	cfg.ShaderDir = t.TempDir()
	_, err := fs.ReadFile(ShaderFS(cfg), shaders.VertexFile)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestApp(t *testing.T) {
	t.Skip("Need GPU and display on CI")
	cfg := config.Default()
	cfg.FPSSeconds = 0
	a := New(cfg)
	defer a.Release()
	require.NoError(t, a.Setup(context.Background()))
	for range 10 {
		require.NoError(t, a.RenderFrame())
	}
	assert.Equal(t, 10, a.Frames)
}
