package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"graphics.gd/classdb/Engine"
	"graphics.gd/classdb/OS"

	"github.com/edisedis777/Mental-Models/protocol/atlas"
)

// Library locates the model library content. A models.md dropped into the
// user data directory overrides the bundled one and is watched for edits,
// so content can be iterated on without rebuilding the application.
type Library struct {
	path    string // empty when running from the bundled library
	watcher *fsnotify.Watcher
}

// loadLibrary parses the user's models.md override when one exists and
// falls back to the bundled library otherwise.
func (client *Client) loadLibrary() (atlas.Catalog, error) {
	client.library = &Library{}
	path := filepath.Join(OS.GetUserDataDir(), "models.md")
	src, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return atlas.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	catalog, err := atlas.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	client.library.path = path
	return catalog, nil
}

// watchLibrary starts a file watch over the override library, if there is
// one. Reloads are parsed off the frame thread and applied through the
// client's queue so the rebuild happens between frames.
func (client *Client) watchLibrary() {
	if client.library.path == "" {
		return
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		Engine.Raise(fmt.Errorf("failed to watch the model library: %w", err))
		return
	}
	// Watch the directory: editors atomically replace the file, which
	// removes an inode-level watch.
	if err := watcher.Add(filepath.Dir(client.library.path)); err != nil {
		watcher.Close()
		Engine.Raise(fmt.Errorf("failed to watch the model library: %w", err))
		return
	}
	client.library.watcher = watcher
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != client.library.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				src, err := os.ReadFile(client.library.path)
				if err != nil {
					Engine.Raise(fmt.Errorf("failed to reload the model library: %w", err))
					continue
				}
				catalog, err := atlas.Parse(src)
				if err != nil {
					Engine.Raise(fmt.Errorf("failed to reload the model library: %w", err))
					continue
				}
				client.queue <- func() {
					client.rebuild(catalog)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				Engine.Raise(fmt.Errorf("model library watch: %w", err))
			}
		}
	}()
}
