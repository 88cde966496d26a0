// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hellotri

import (
	"encoding/binary"
	"time"

	"cogentcore.org/hellotri/base/errors"
	"github.com/chewxy/math32"
)

// ConstantBufferSize is the allocated size of each constant buffer:
// uniform buffers are bound at multiples of 256 bytes.
const ConstantBufferSize = 256

// PulsePeriod is the time for each channel of the pulse to cycle once
const PulsePeriod = 3 * time.Second

// ColorMul is the contents of the constant buffer: a multiplier on the
// vertex colors, padded to a vec4 as the std140 layout requires.
type ColorMul struct {
	Mul [3]float32
	_   float32
}

// White leaves the vertex colors unchanged
var White = ColorMul{Mul: [3]float32{1, 1, 1}}

// Pulse returns the color multiplier at time t since the start:
// each channel is a sine wave between 0 and 1, a third of a
// period apart.
func Pulse(t time.Duration) ColorMul {
	phase := 2 * math32.Pi * float32(t.Seconds()/PulsePeriod.Seconds())
	var cm ColorMul
	for i := range cm.Mul {
		cm.Mul[i] = 0.5 + 0.5*math32.Sin(phase+float32(i)*2*math32.Pi/3)
	}
	return cm
}

// Bytes packs the constants for the constant buffer
func (cm ColorMul) Bytes() []byte {
	return errors.Must1(binary.Append(make([]byte, 0, 16), binary.LittleEndian, cm))
}
