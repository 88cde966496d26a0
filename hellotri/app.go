// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hellotri draws a colored triangle with Vulkan, setting up
// the device, swapchain, resources, and pipeline in sequence, and
// stopping after the configured [config.Stage].
package hellotri

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/hellotri/base/errors"
	"cogentcore.org/hellotri/config"
	"cogentcore.org/hellotri/shaders"
	"cogentcore.org/hellotri/vgpu"
	vk "github.com/goki/vulkan"
)

// IdleInterval is how often window events are polled
// when the render loop is not running.
const IdleInterval = 10 * time.Millisecond

// App holds everything made by the setup sequence, which is released
// in reverse order by [App.Release].
type App struct {
	Config    *config.Config
	Window    *vgpu.Window
	GPU       *vgpu.GPU
	Device    *vgpu.Device
	Surface   *vgpu.Surface
	System    *vgpu.System
	Pipeline  *vgpu.Pipeline
	ColorVar  *vgpu.Var
	Vertices  *vgpu.Buffer
	Indices   *vgpu.Buffer
	Constants []*vgpu.Buffer

	// Frames is the number of frames rendered
	Frames int

	surface  vk.Surface
	inited   bool
	start    time.Time
	fpsStart time.Time
	fpsCount int
	reload   <-chan string
}

// New returns a new App for the given validated config
func New(cfg *config.Config) *App {
	return &App{Config: cfg, surface: vk.NullSurface}
}

// setupStep is one stage of the setup sequence
type setupStep struct {
	stage config.Stage
	run   func(ctx context.Context) error
}

// Setup runs the setup sequence up to the configured stage.
// Release must be called afterward, even if Setup fails.
func (a *App) Setup(ctx context.Context) error {
	return a.runSteps(ctx, []setupStep{
		{config.StageDevice, a.setupDevice},
		{config.StageSwapchain, a.setupSwapchain},
		{config.StageResources, a.setupResources},
		{config.StageRender, a.setupRender},
	})
}

// runSteps runs the steps in order, up to the configured stage,
// stopping at the first error.
func (a *App) runSteps(ctx context.Context, steps []setupStep) error {
	for _, st := range steps {
		if !a.Config.Stage.Includes(st.stage) {
			break
		}
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err)
		}
		if err := st.run(ctx); err != nil {
			return errors.Errorf("setup %s: %w", st.stage, err)
		}
		slog.Info("setup complete", "stage", st.stage.String())
	}
	return nil
}

// setupDevice makes the instance, selects the adapter, and makes the
// logical device with its queue, the command pool, and the fences.
func (a *App) setupDevice(ctx context.Context) error {
	cfg := a.Config
	if cfg.Headless {
		if err := vgpu.LoadVulkan(); err != nil {
			return err
		}
	} else {
		if err := vgpu.Init(); err != nil {
			return err
		}
		a.inited = true
		win, err := vgpu.NewWindow(cfg.Size(), cfg.Title)
		if err != nil {
			return err
		}
		a.Window = win
	}

	gp := vgpu.NewGPU()
	a.GPU = gp
	gp.Debug = cfg.Debug
	gp.AllowSoftware = cfg.AllowSoftware
	c, err := cfg.APIConstraint()
	if err != nil {
		return err
	}
	gp.MinAPIVersion = c
	withSurface := a.Window != nil && cfg.Stage.Includes(config.StageSwapchain)
	if a.Window != nil {
		gp.AddInstanceExt(a.Window.InstanceExts()...)
	}
	if withSurface {
		gp.AddDeviceExt(vgpu.SwapchainExt)
	}
	if err := gp.Config(cfg.Title); err != nil {
		return err
	}

	a.Device = &vgpu.Device{}
	if withSurface {
		vs, err := a.Window.CreateSurface(gp)
		if err != nil {
			return err
		}
		a.surface = vs
		if err := a.Device.InitSurface(gp, vs); err != nil {
			return err
		}
	} else {
		if err := a.Device.Init(gp, vk.QueueGraphicsBit); err != nil {
			return err
		}
	}
	slog.Info("device ready", "adapter", gp.Adapter.Name, "queue family", a.Device.QueueIndex)

	sy, err := vgpu.NewGraphicsSystem(gp, "hellotri", a.Device, cfg.BackBuffers)
	if err != nil {
		return err
	}
	a.System = sy
	return nil
}

// setupSwapchain makes the swapchain for the window surface, with a
// render target view and framebuffer for each back buffer.
func (a *App) setupSwapchain(ctx context.Context) error {
	if a.surface == vk.NullSurface {
		return errors.New("the swapchain needs a window")
	}
	cfg := a.Config
	sf, err := vgpu.NewSurface(a.GPU, a.Device, a.surface, cfg.Size(), cfg.BackBuffers, cfg.VSync)
	if err != nil {
		return err
	}
	a.Surface = sf
	sy := a.System
	if err := sy.Sync.SetImages(sf.NFrames); err != nil {
		return err
	}
	if err := sy.ConfigRender(&sf.Format); err != nil {
		return err
	}
	sy.SetClearColor(cfg.Clear())
	return sf.SetRenderPass(&sy.RenderPass)
}

// setupResources makes the root signature layout, with the constant
// buffer at binding 0, and the vertex, index, and constant buffers.
func (a *App) setupResources(ctx context.Context) error {
	sy := a.System
	a.ColorVar = sy.Vars.AddUniform("ColorMul", 0, vgpu.VertexShader)
	if err := sy.ConfigVars(); err != nil {
		return err
	}

	var err error
	vtx := VertexBytes(TriangleVertices)
	if a.Vertices, err = vgpu.NewBuffer(a.GPU, a.Device.Device, vgpu.VertexBuff, len(vtx)); err != nil {
		return err
	}
	if err := a.Vertices.Copy(vtx); err != nil {
		return err
	}
	idx := IndexBytes(TriangleIndices)
	if a.Indices, err = vgpu.NewBuffer(a.GPU, a.Device.Device, vgpu.IndexBuff, len(idx)); err != nil {
		return err
	}
	if err := a.Indices.Copy(idx); err != nil {
		return err
	}

	for i := range sy.Cmds {
		cb, err := vgpu.NewBuffer(a.GPU, a.Device.Device, vgpu.UniformBuff, ConstantBufferSize)
		if err != nil {
			return err
		}
		a.Constants = append(a.Constants, cb)
		if err := cb.Copy(White.Bytes()); err != nil {
			return err
		}
		if err := sy.Vars.BindUniform(i, a.ColorVar, cb); err != nil {
			return err
		}
	}
	if err := sy.WaitUploads(); err != nil {
		return err
	}
	a.nameResources()
	slog.Info("resources ready", "vertices", len(TriangleVertices), "indices", len(TriangleIndices), "constant buffers", len(a.Constants))
	return nil
}

// nameResources names the root signature layout and the buffers,
// for validation messages and GPU debuggers, when the device supports it.
func (a *App) nameResources() {
	dv := a.Device
	if !dv.CanName() {
		return
	}
	dv.SetName(vgpu.ObjectPipelineLayout, vgpu.Handle(a.System.Vars.VkDescLayout), "Hello Triangle Root Signature")
	dv.SetName(vgpu.ObjectBuffer, vgpu.Handle(a.Vertices.Buffer), "Hello Triangle Vertex Buffer")
	dv.SetName(vgpu.ObjectBuffer, vgpu.Handle(a.Indices.Buffer), "Hello Triangle Index Buffer")
	for i, cb := range a.Constants {
		dv.SetName(vgpu.ObjectBuffer, vgpu.Handle(cb.Buffer), fmt.Sprintf("Hello Triangle Constant Buffer %d", i))
	}
}

// ShaderFS returns the file system the shaders are loaded from:
// the ShaderDir directory if it is set, otherwise [shaders.Content].
func ShaderFS(cfg *config.Config) fs.FS {
	if cfg.ShaderDir == "" {
		return shaders.Content
	}
	return os.DirFS(cfg.ShaderDir)
}

// setupRender loads the shaders and makes the pipeline
func (a *App) setupRender(ctx context.Context) error {
	cfg := a.Config
	pl := a.System.NewPipeline("triangle")
	a.Pipeline = pl
	pl.SetVertexInput(VertexStride, VertexAttrs()...)
	pl.SetCullMode(vk.CullModeNone)
	fsys := ShaderFS(cfg)
	if _, err := pl.AddShaderFS("vertex", vgpu.VertexShader, fsys, shaders.VertexFile); err != nil {
		return err
	}
	if _, err := pl.AddShaderFS("fragment", vgpu.FragmentShader, fsys, shaders.FragmentFile); err != nil {
		return err
	}
	if err := a.System.ConfigPipelines(); err != nil {
		return err
	}
	a.Device.SetName(vgpu.ObjectPipeline, vgpu.Handle(pl.VkPipeline), "Hello Triangle Pipeline")
	if cfg.Watch {
		ch, err := WatchShaders(ctx, cfg.ShaderDir)
		if err != nil {
			return err
		}
		a.reload = ch
		slog.Info("watching shaders", "dir", cfg.ShaderDir)
	}
	return nil
}

// Run runs until the window is closed or ctx is done: the render loop
// for the render stage, otherwise just window events. Without a window
// it returns right away.
func (a *App) Run(ctx context.Context) error {
	if a.Window == nil {
		return nil
	}
	if !a.Config.Stage.Includes(config.StageRender) {
		return a.idle(ctx)
	}
	a.start = time.Now()
	a.fpsStart = a.start
	for !a.Window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			break
		}
		vgpu.PollEvents()
		if err := a.RenderFrame(); err != nil {
			return err
		}
		if err := a.checkReload(); err != nil {
			return err
		}
		a.reportFPS()
	}
	a.Device.WaitIdle()
	return nil
}

func (a *App) idle(ctx context.Context) error {
	tick := time.NewTicker(IdleInterval)
	defer tick.Stop()
	for !a.Window.ShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			vgpu.PollEvents()
		}
	}
	return nil
}

// RenderFrame renders and presents one frame: it waits on the fence
// of the frame in flight, acquires a back buffer, updates the constant
// buffer, records and submits the commands, and presents.
func (a *App) RenderFrame() error {
	sy := a.System
	sf := a.Surface
	sync := sy.Sync
	if a.Window.Resized() {
		return a.resize()
	}

	fence := sync.Fence()
	if err := fence.Wait(vgpu.WaitForever); err != nil {
		return err
	}
	idx, outdated, err := sf.AcquireNextImage(sync.Acquired())
	if err != nil {
		return err
	}
	if outdated {
		return a.resize()
	}
	if err := fence.Reset(); err != nil {
		return err
	}

	frame := sync.Index
	if err := a.Constants[frame].Copy(a.colorMul().Bytes()); err != nil {
		return err
	}

	cmd := sy.Cmd()
	fr := sf.Frames[idx]
	if err := sy.CmdPool.BeginCmd(cmd); err != nil {
		return err
	}
	a.Pipeline.BindPipeline(cmd)
	sy.Vars.Bind(cmd, frame)
	sy.BeginRenderPass(cmd, fr)
	a.Pipeline.BindVertex(cmd, a.Vertices, a.Indices)
	a.Pipeline.DrawIndexed(cmd, len(TriangleIndices))
	sy.EndRenderPass(cmd, fr)
	if err := sy.CmdPool.EndCmd(cmd); err != nil {
		return err
	}

	done := sync.RenderDone[idx]
	if err := vgpu.Submit(a.Device, cmd, []vk.Semaphore{sync.Acquired()}, []vk.Semaphore{done}, fence); err != nil {
		return err
	}
	outdated, err = sf.PresentImage(done, idx)
	sync.Next()
	a.Frames++
	a.fpsCount++
	if err != nil {
		return err
	}
	if outdated {
		return a.resize()
	}
	return nil
}

func (a *App) colorMul() ColorMul {
	if !a.Config.Pulse {
		return White
	}
	return Pulse(time.Since(a.start))
}

// resize remakes the swapchain at the current window size.
// Nothing is done while the window is minimized.
func (a *App) resize() error {
	size := a.Window.FramebufferSize()
	if size.X == 0 || size.Y == 0 {
		time.Sleep(IdleInterval)
		return nil
	}
	if err := a.Surface.ReInitSwapchain(size); err != nil {
		return err
	}
	return a.System.Sync.SetImages(a.Surface.NFrames)
}

// checkReload rebuilds the pipeline if the shader watcher reported
// a change. Shaders that fail to load are logged and the old
// pipeline is kept.
func (a *App) checkReload() error {
	if a.reload == nil {
		return nil
	}
	select {
	case name := <-a.reload:
		slog.Info("reloading shaders", "changed", filepath.Base(name))
		a.Device.WaitIdle()
		err := a.Pipeline.Reload(ShaderFS(a.Config))
		if a.Pipeline.VkPipeline == nil {
			return err
		}
		errors.Log(err)
	default:
	}
	return nil
}

func (a *App) reportFPS() {
	if a.Config.FPSSeconds <= 0 {
		return
	}
	dur := time.Since(a.fpsStart).Seconds()
	if dur < a.Config.FPSSeconds {
		return
	}
	slog.Info("fps", "fps", int(float64(a.fpsCount)/dur+0.5), "frames", a.Frames)
	a.fpsCount = 0
	a.fpsStart = time.Now()
}

// Release waits for the device to be idle and then destroys
// everything made by Setup, in reverse order. It can be called
// after a partial Setup.
func (a *App) Release() {
	if a.Device != nil {
		a.Device.WaitIdle()
	}
	for _, cb := range a.Constants {
		cb.Destroy()
	}
	a.Constants = nil
	if a.Indices != nil {
		a.Indices.Destroy()
		a.Indices = nil
	}
	if a.Vertices != nil {
		a.Vertices.Destroy()
		a.Vertices = nil
	}
	if a.Surface != nil {
		a.Surface.Destroy()
		a.Surface = nil
	} else if a.GPU != nil {
		a.GPU.DestroySurface(a.surface)
	}
	a.surface = vk.NullSurface
	if a.System != nil {
		a.System.Destroy()
		a.System = nil
		a.Pipeline = nil
	}
	if a.Device != nil {
		a.Device.Destroy()
		a.Device = nil
	}
	if a.GPU != nil {
		a.GPU.Destroy()
		a.GPU = nil
	}
	if a.Window != nil {
		a.Window.Destroy()
		a.Window = nil
	}
	if a.inited {
		vgpu.Terminate()
		a.inited = false
	}
}
