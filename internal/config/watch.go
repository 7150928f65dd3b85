package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/viewcam/pkg/camctl"
)

// Watch reloads the settings at path whenever the file changes and sends them
// on the returned channel until ctx is done. Reload failures go to onError and
// the previous settings stay in effect.
//
// The directory is watched rather than the file so editors that replace the
// file on save keep triggering reloads.
func Watch(ctx context.Context, path string, onError func(error)) (<-chan camctl.Settings, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errorx.Decorate(err, "config: creating watcher")
	}

	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, errorx.Decorate(err, "config: watching %s", path)
	}

	out := make(chan camctl.Settings, 1)
	name := filepath.Clean(path)

	go func() {
		defer w.Close()
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != name || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				s, err := Load(path)
				if err != nil {
					onError(err)
					continue
				}

				// Only the latest settings matter.
				select {
				case <-out:
				default:
				}
				out <- s

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				onError(errorx.Decorate(err, "config: watcher"))
			}
		}
	}()

	return out, nil
}
