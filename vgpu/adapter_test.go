// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgpu

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	v := MakeVersion(1, 3, 250)
	ma, mi, pa := VersionParts(v)
	assert.Equal(t, uint32(1), ma)
	assert.Equal(t, uint32(3), mi)
	assert.Equal(t, uint32(250), pa)
	assert.Equal(t, "1.3.250", VersionString(v))
	assert.Equal(t, "1.3.250", APIVersion(v).String())
}

func TestAdapterType(t *testing.T) {
	assert.Equal(t, AdapterDiscrete, AdapterType(vk.PhysicalDeviceTypeDiscreteGpu))
	assert.Equal(t, AdapterIntegrated, AdapterType(vk.PhysicalDeviceTypeIntegratedGpu))
	assert.Equal(t, AdapterSoftware, AdapterType(vk.PhysicalDeviceTypeCpu))
	assert.Equal(t, AdapterOther, AdapterType(vk.PhysicalDeviceTypeOther))
	assert.Equal(t, "Software", AdapterSoftware.String())
	assert.Equal(t, "Discrete", AdapterDiscrete.String())
	b, err := AdapterIntegrated.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Integrated", string(b))
}

func testAdapters() []AdapterInfo {
	return []AdapterInfo{
		{Index: 0, Name: "llvmpipe", Type: AdapterSoftware, APIVersion: MakeVersion(1, 3, 0), Graphics: true},
		{Index: 1, Name: "old", Type: AdapterDiscrete, APIVersion: MakeVersion(1, 0, 61), Graphics: true},
		{Index: 2, Name: "compute", Type: AdapterDiscrete, APIVersion: MakeVersion(1, 3, 0), Graphics: false},
		{Index: 3, Name: "good", Type: AdapterIntegrated, APIVersion: MakeVersion(1, 2, 190), Graphics: true},
	}
}

func TestSatisfies(t *testing.T) {
	ads := testAdapters()
	c, err := semver.NewConstraint(">= 1.1")
	require.NoError(t, err)

	ok, why := ads[0].Satisfies(c, false)
	assert.False(t, ok)
	assert.Equal(t, "software adapter", why)
	ok, _ = ads[0].Satisfies(c, true)
	assert.True(t, ok)

	ok, why = ads[1].Satisfies(c, false)
	assert.False(t, ok)
	assert.Contains(t, why, "1.0.61")

	ok, why = ads[2].Satisfies(nil, false)
	assert.False(t, ok)
	assert.Equal(t, "no graphics queue", why)

	ok, why = ads[3].Satisfies(c, false)
	assert.True(t, ok)
	assert.Empty(t, why)
}

func TestSelectAdapter(t *testing.T) {
	ads := testAdapters()
	c, err := semver.NewConstraint(">= 1.1")
	require.NoError(t, err)

	idx, err := SelectAdapter(ads, c, false)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	idx, err = SelectAdapter(ads, c, true)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = SelectAdapter(ads, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	strict, err := semver.NewConstraint(">= 1.4")
	require.NoError(t, err)
	idx, err = SelectAdapter(ads, strict, false)
	assert.Error(t, err)
	assert.Equal(t, -1, idx)
	assert.Contains(t, err.Error(), "good")

	_, err = SelectAdapter(nil, c, false)
	assert.Error(t, err)
}
