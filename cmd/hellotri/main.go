// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hellotri draws a colored triangle with Vulkan.
// The --stage flag stops the setup sequence early, after the
// device, the swapchain, or the resources are made.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"cogentcore.org/hellotri/base/errors"
	"cogentcore.org/hellotri/base/logx"
	"cogentcore.org/hellotri/config"
	"cogentcore.org/hellotri/hellotri"
	"cogentcore.org/hellotri/vgpu"
	"github.com/spf13/cobra"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

// flags holds the command line flags, which are applied over
// the config file and environment only when set.
type flags struct {
	config   string
	v        bool
	vv       bool
	q        bool
	debug    bool
	width    int
	height   int
	stage    config.Stage
	shaders  string
	watch    bool
	headless bool
	vsync    bool
}

func main() {
	if err := newRootCmd(newFlags()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newFlags() *flags {
	return &flags{stage: config.StageRender}
}

func newRootCmd(fl *flags) *cobra.Command {
	root := &cobra.Command{
		Use:           "hellotri",
		Short:         "Draw a colored triangle with Vulkan",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fl)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&fl.config, "config", config.DefaultFile, "TOML or YAML config file")
	pf.BoolVarP(&fl.v, "verbose", "v", false, "log info messages")
	pf.BoolVar(&fl.vv, "vv", false, "log debug messages")
	pf.BoolVarP(&fl.q, "quiet", "q", false, "only log errors")
	pf.BoolVar(&fl.debug, "debug", false, "enable the Vulkan validation layer")
	pf.IntVar(&fl.width, "width", 1280, "window width in pixels")
	pf.IntVar(&fl.height, "height", 720, "window height in pixels")
	pf.Var(&fl.stage, "stage", "how far to run setup: device, swapchain, resources, or render")
	pf.StringVar(&fl.shaders, "shaders", "", "directory with the compiled SPIR-V shaders, instead of the built in ones")
	pf.BoolVar(&fl.watch, "watch", false, "reload the shaders in the --shaders directory when they change")
	pf.BoolVar(&fl.headless, "headless", false, "with --stage device, load Vulkan without a window")
	pf.BoolVar(&fl.vsync, "vsync", true, "wait for vertical blank when presenting")

	root.AddCommand(&cobra.Command{
		Use:           "run",
		Short:         "Run the program (the default)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fl)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:           "info",
		Short:         "List the GPU adapters and whether they can be used",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return info(cmd, fl)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "hellotri", version())
		},
	})
	return root
}

// loadConfig loads the config from defaults, the config file,
// and the environment, then applies the flags that were set,
// and validates it. It also sets up the default logger.
func loadConfig(cmd *cobra.Command, fl *flags) (*config.Config, error) {
	if fl.v || fl.vv || fl.q {
		logx.UserLevel = logx.LevelFromFlags(fl.vv, fl.v, fl.q)
	}
	logx.SetDefaultLogger()

	set := cmd.Flags().Changed
	cfg, err := config.Load(fl.config, set("config"))
	if err != nil {
		return nil, err
	}
	if set("debug") {
		cfg.Debug = fl.debug
	}
	if set("width") {
		cfg.Width = fl.width
	}
	if set("height") {
		cfg.Height = fl.height
	}
	if set("stage") {
		cfg.Stage = fl.stage
	}
	if set("shaders") {
		cfg.ShaderDir = fl.shaders
	}
	if set("watch") {
		cfg.Watch = fl.watch
	}
	if set("headless") {
		cfg.Headless = fl.headless
	}
	if set("vsync") {
		cfg.VSync = fl.vsync
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, fl *flags) error {
	cfg, err := loadConfig(cmd, fl)
	if err != nil {
		return errors.Log(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("hellotri", "version", version(), "stage", cfg.Stage.String())
	app := hellotri.New(cfg)
	defer app.Release()
	if err := app.Setup(ctx); err != nil {
		return errors.Log(err)
	}
	return errors.Log(app.Run(ctx))
}

func info(cmd *cobra.Command, fl *flags) error {
	cfg, err := loadConfig(cmd, fl)
	if err != nil {
		return errors.Log(err)
	}
	if err := vgpu.LoadVulkan(); err != nil {
		return errors.Log(err)
	}
	c, err := cfg.APIConstraint()
	if err != nil {
		return errors.Log(err)
	}
	gp := vgpu.NewGPU()
	gp.Debug = cfg.Debug
	if err := gp.ConfigInstance("hellotri info"); err != nil {
		return errors.Log(err)
	}
	defer gp.Destroy()
	ads, err := gp.Adapters()
	if err != nil {
		return errors.Log(err)
	}
	out := cmd.OutOrStdout()
	sel, _ := vgpu.SelectAdapter(ads, c, cfg.AllowSoftware)
	for i := range ads {
		ad := &ads[i]
		ok, why := ad.Satisfies(c, cfg.AllowSoftware)
		mark := " "
		if i == sel {
			mark = "*"
		}
		status := "usable"
		if !ok {
			status = "skipped: " + why
		}
		fmt.Fprintf(out, "%s %s [%s]\n", mark, ad.String(), status)
	}
	if len(ads) == 0 {
		fmt.Fprintln(out, "no adapters found")
	}
	return nil
}

func version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version
}
