// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

//go:generate core generate

import (
	"strings"

	"cogentcore.org/hellotri/base/errors"
)

// Stage is how far the setup sequence runs before the program
// settles into its event loop. Each stage includes all of the
// stages before it.
type Stage int32 //enums:enum -trim-prefix Stage -transform lower

const (
	// StageDevice creates the instance, adapter, logical device,
	// command queue, command pool, and a fence.
	StageDevice Stage = iota

	// StageSwapchain adds the window surface, the swapchain with
	// its back buffers, and a render target view for each of them.
	StageSwapchain

	// StageResources adds the descriptor layout (root signature)
	// and the vertex, index, and constant buffers.
	StageResources

	// StageRender adds the shaders and pipeline state and runs
	// the per-frame render loop.
	StageRender
)

// ParseStage returns the stage with the given name, ignoring case.
func ParseStage(s string) (Stage, error) {
	var st Stage
	if err := st.SetString(strings.ToLower(strings.TrimSpace(s))); err != nil {
		return 0, errors.Errorf("unknown stage %q (want one of %s)", s, strings.Join(stageNames(), ", "))
	}
	return st, nil
}

func stageNames() []string {
	vals := StageValues()
	nms := make([]string, len(vals))
	for i, v := range vals {
		nms[i] = v.String()
	}
	return nms
}

// IsValid returns whether the stage is one of the defined stages.
func (s Stage) IsValid() bool {
	return s >= 0 && s < StageN
}

// Includes returns whether running to stage s also runs stage o.
func (s Stage) Includes(o Stage) bool {
	return s >= o
}

// Set sets the stage from its name, for use as a command line flag value.
func (s *Stage) Set(v string) error {
	st, err := ParseStage(v)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Type returns the flag type name.
func (s *Stage) Type() string {
	return "stage"
}
