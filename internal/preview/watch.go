package preview

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow batches bursts of file events (editors write several times
// per save) into one rebuild.
const debounceWindow = 300 * time.Millisecond

// newWatcher creates a recursive watcher over root. fsnotify does not watch
// recursively on its own, so every subdirectory is added explicitly; newly
// created directories are added from the event loop.
func newWatcher(root string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addDirsRecursive(watcher, root); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return watcher, nil
}

func addDirsRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// debouncer coalesces triggers into a buffered request channel.
type debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	req   chan struct{}
}

func newDebouncer() *debouncer {
	return &debouncer{req: make(chan struct{}, 1)}
}

// Trigger schedules a request after the debounce window, resetting the
// window on every call.
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(debounceWindow, func() {
		select {
		case d.req <- struct{}{}:
		default:
		}
	})
}

// Requests returns the channel rebuild requests arrive on.
func (d *debouncer) Requests() <-chan struct{} {
	return d.req
}
