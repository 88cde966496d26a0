// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hellotri

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/hellotri/base/errors"
	"github.com/fsnotify/fsnotify"
)

// IsShaderEvent returns whether the event is a compiled shader
// being written or replaced.
func IsShaderEvent(ev fsnotify.Event) bool {
	if filepath.Ext(ev.Name) != ".spv" {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// WatchShaders watches dir for changes to compiled shaders, sending
// the name of each changed file on the returned channel until ctx is done.
// Sends do not block: a change is dropped if the previous one has not
// been received yet, as one reload covers both.
func WatchShaders(ctx context.Context, dir string) (<-chan string, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, errors.Wrap(err)
	}
	ch := make(chan string, 1)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !IsShaderEvent(ev) {
					continue
				}
				select {
				case ch <- ev.Name:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("shader watcher", "err", err)
			}
		}
	}()
	return ch, nil
}
