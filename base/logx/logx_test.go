// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func newTestLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(buf, &slog.HandlerOptions{Level: level}, termenv.WithProfile(termenv.Ascii)))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug)

	l.Info("swapchain ready", "width", 1280, "height", 720)
	assert.Equal(t, "INFO swapchain ready width=1280 height=720\n", buf.String())

	buf.Reset()
	l.Debug("adapter", "name", "Software Rasterizer")
	assert.Equal(t, "DEBUG adapter name=\"Software Rasterizer\"\n", buf.String())

	buf.Reset()
	l.With("frame", 1).WithGroup("gpu").Warn("slow", "ms", 20, slog.Group("q", "idx", 0))
	assert.Equal(t, "WARN slow frame=1 gpu.ms=20 gpu.q.idx=0\n", buf.String())
}

func TestHandlerColors(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}, termenv.WithProfile(termenv.ANSI)))

	l.Info("device ready")
	assert.Equal(t, "INFO device ready\n", buf.String())

	buf.Reset()
	l.Warn("slow frame")
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "WARN")

	buf.Reset()
	l.Error("device lost")
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelWarn)
	l.Info("hidden")
	assert.Empty(t, buf.String())
	l.Error("shown")
	assert.Equal(t, "ERROR shown\n", buf.String())

	h := NewHandler(&buf, nil)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
}

func TestDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
