// Copyright (c) 2024, The DirectX11Practice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/Imukata-aH/DirectX11Practice/base/errors"
	"github.com/fsnotify/fsnotify"
)

// WatchLag is how long the file must be left alone after a change
// before it is read, as editors often write a file in several steps.
var WatchLag = 100 * time.Millisecond

// Watch calls update each time the given file is written, until ctx
// is done. The directory of the file is watched, so that editors that
// replace the file by renaming are followed. Errors from update are
// logged and do not stop the watch.
func Watch(ctx context.Context, filename string, update func() error) error {
	filename = filepath.Clean(filename)
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err)
	}
	defer watch.Close()
	if err := watch.Add(filepath.Dir(filename)); err != nil {
		return errors.Wrap(err)
	}
	slog.Info("watching", "file", filename)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watch.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("file changed", "file", filename, "op", event.Op)
			if timer == nil {
				timer = time.NewTimer(WatchLag)
				fire = timer.C
			} else {
				timer.Reset(WatchLag)
			}
		case <-fire:
			errors.Log(update())
		case err, ok := <-watch.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
