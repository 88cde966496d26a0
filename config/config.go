// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the hellotri program,
// which is set from `default:` tags, then a TOML file, then
// HELLOTRI_ environment variables, and finally command line flags.
package config

import (
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/hellotri/base/errors"
	"github.com/Masterminds/semver/v3"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of all environment variables read by [ApplyEnv].
const EnvPrefix = "HELLOTRI_"

// DefaultFile is the config file opened when none is given explicitly.
const DefaultFile = "hellotri.toml"

// Config is the main config struct that contains all of the
// configuration options for the program.
type Config struct {

	// the window title
	Title string `toml:"title" yaml:"title" env:"TITLE" default:"Hello Triangle" desc:"the window title"`

	// the initial width of the window in pixels
	Width int `toml:"width" yaml:"width" env:"WIDTH" default:"1280" desc:"the initial width of the window in pixels"`

	// the initial height of the window in pixels
	Height int `toml:"height" yaml:"height" env:"HEIGHT" default:"720" desc:"the initial height of the window in pixels"`

	// the number of swapchain back buffers to request, which is also the number of frames in flight
	BackBuffers int `toml:"back_buffers" yaml:"back_buffers" env:"BACK_BUFFERS" default:"2" desc:"the number of swapchain back buffers to request, which is also the number of frames in flight"`

	// how far to run the setup sequence
	Stage Stage `toml:"stage" yaml:"stage" env:"STAGE" default:"render" desc:"how far to run the setup sequence"`

	// enable the validation layer and the debug report callback
	Debug bool `toml:"debug" yaml:"debug" env:"DEBUG" desc:"enable the validation layer and the debug report callback"`

	// semver constraint that the Vulkan API version of the adapter must satisfy
	MinAPIVersion string `toml:"min_api_version" yaml:"min_api_version" env:"MIN_API_VERSION" default:">= 1.0" desc:"semver constraint that the Vulkan API version of the adapter must satisfy"`

	// accept software (CPU) adapters, which are otherwise skipped
	AllowSoftware bool `toml:"allow_software" yaml:"allow_software" env:"ALLOW_SOFTWARE" desc:"accept software (CPU) adapters, which are otherwise skipped"`

	// directory containing the compiled SPIR-V shaders; if empty, the shaders built into the program are used
	ShaderDir string `toml:"shader_dir" yaml:"shader_dir" env:"SHADER_DIR" desc:"directory containing the compiled SPIR-V shaders; if empty, the shaders built into the program are used"`

	// reload the shaders when their files in ShaderDir change
	Watch bool `toml:"watch" yaml:"watch" env:"WATCH" desc:"reload the shaders when their files in ShaderDir change"`

	// wait for vertical blank when presenting (FIFO present mode)
	VSync bool `toml:"vsync" yaml:"vsync" env:"VSYNC" default:"true" desc:"wait for vertical blank when presenting (FIFO present mode)"`

	// the RGBA color that each frame is cleared to
	ClearColor []float32 `toml:"clear_color" yaml:"clear_color" env:"CLEAR_COLOR" default:"0.1,0.1,0.1,1" desc:"the RGBA color that each frame is cleared to"`

	// animate the color multiplier in the constant buffer
	Pulse bool `toml:"pulse" yaml:"pulse" env:"PULSE" default:"true" desc:"animate the color multiplier in the constant buffer"`

	// seconds between frames-per-second reports; 0 disables them
	FPSSeconds float64 `toml:"fps_seconds" yaml:"fps_seconds" env:"FPS_SECONDS" default:"10" desc:"seconds between frames-per-second reports; 0 disables them"`

	// for the device stage, load Vulkan directly instead of opening a window
	Headless bool `toml:"headless" yaml:"headless" env:"HEADLESS" desc:"for the device stage, load Vulkan directly instead of opening a window"`
}

// Default returns a new config with all fields set from
// their `default:` tags.
func Default() *Config {
	cfg := &Config{}
	errors.Must(SetFromDefaults(cfg))
	return cfg
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values.
func SetFromDefaults(cfg *Config) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Environment:         map[string]string{},
		Prefix:              EnvPrefix,
		DefaultValueTagName: "default",
	})
	if err != nil {
		return errors.Errorf("set defaults: %w", err)
	}
	return nil
}

// IsYAML returns whether the file is in YAML format, based on
// its extension. All other files are TOML.
func IsYAML(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	return ext == ".yaml" || ext == ".yml"
}

// Open reads the given TOML or YAML file over the current values of cfg.
// Fields that are not in the file keep their values.
func Open(cfg *Config, file string) error {
	fn, err := homedir.Expand(file)
	if err != nil {
		return errors.Wrap(err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return errors.Wrap(err)
	}
	if IsYAML(fn) {
		err = yaml.Unmarshal(b, cfg)
	} else {
		err = toml.Unmarshal(b, cfg)
	}
	if err != nil {
		return errors.Errorf("config file %q: %w", fn, err)
	}
	return nil
}

// Save writes cfg to the given file, in YAML format if
// [IsYAML] and TOML format otherwise.
func Save(cfg *Config, file string) error {
	fn, err := homedir.Expand(file)
	if err != nil {
		return errors.Wrap(err)
	}
	var b []byte
	if IsYAML(fn) {
		b, err = yaml.Marshal(cfg)
	} else {
		b, err = toml.Marshal(cfg)
	}
	if err != nil {
		return errors.Wrap(err)
	}
	return errors.Wrap(os.WriteFile(fn, b, 0666))
}

// ApplyEnv sets fields of cfg from any HELLOTRI_ environment
// variables that are present.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the defaults overridden by the given config file and then
// by the environment. If explicit is false, a missing file is skipped.
func Load(file string, explicit bool) (*Config, error) {
	cfg := Default()
	if file != "" {
		err := Open(cfg, file)
		if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
			return nil, err
		}
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if any of the settings are unusable.
// It also expands a leading ~ in ShaderDir.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.BackBuffers < 2 || cfg.BackBuffers > 3 {
		errs = append(errs, fmt.Errorf("back buffers must be 2 or 3, got %d", cfg.BackBuffers))
	}
	if !cfg.Stage.IsValid() {
		errs = append(errs, fmt.Errorf("invalid stage %d", int32(cfg.Stage)))
	}
	if _, err := cfg.APIConstraint(); err != nil {
		errs = append(errs, err)
	}
	if len(cfg.ClearColor) != 4 {
		errs = append(errs, fmt.Errorf("clear color must have 4 components, got %d", len(cfg.ClearColor)))
	}
	if cfg.Headless && cfg.Stage != StageDevice {
		errs = append(errs, fmt.Errorf("headless runs only the %s stage, not %s", StageDevice, cfg.Stage))
	}
	if cfg.FPSSeconds < 0 {
		errs = append(errs, fmt.Errorf("fps seconds must not be negative, got %g", cfg.FPSSeconds))
	}
	if cfg.Watch && cfg.ShaderDir == "" {
		errs = append(errs, fmt.Errorf("watch needs a shader dir"))
	}
	dir, err := homedir.Expand(cfg.ShaderDir)
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.ShaderDir = dir
	}
	return errors.Wrap(errors.Join(errs...))
}

// APIConstraint returns the parsed MinAPIVersion constraint.
func (cfg *Config) APIConstraint() (*semver.Constraints, error) {
	c, err := semver.NewConstraint(cfg.MinAPIVersion)
	if err != nil {
		return nil, fmt.Errorf("min api version %q: %w", cfg.MinAPIVersion, err)
	}
	return c, nil
}

// Size returns the window size.
func (cfg *Config) Size() image.Point {
	return image.Pt(cfg.Width, cfg.Height)
}

// Clear returns the clear color as a fixed RGBA array.
func (cfg *Config) Clear() [4]float32 {
	var c [4]float32
	copy(c[:], cfg.ClearColor)
	return c
}
