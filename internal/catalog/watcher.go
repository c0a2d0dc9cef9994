package catalog

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 100 * time.Millisecond

// Watcher reports changes to catalog files. It watches the containing
// directories so files replaced by editors keep being tracked.
type Watcher struct {
	fw      *fsnotify.Watcher
	files   map[string]bool
	done    chan struct{}
	stopped bool
	timers  map[string]*time.Timer
	mu      sync.Mutex
}

// NewWatcher creates a watcher for the given files. Empty paths are skipped.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fw:    fw,
		files:  make(map[string]bool),
		done:   make(chan struct{}),
		timers: make(map[string]*time.Timer),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Watch calls onChange with the absolute path of each changed catalog file.
// Events for a file are coalesced until it has been quiet for
// debounceInterval, so the callback sees the file after the last write.
func (w *Watcher) Watch(onChange func(path string)) {
	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				path, err := filepath.Abs(event.Name)
				if err != nil || !w.files[path] {
					continue
				}
				w.schedule(path, onChange)

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				log.Printf("Catalog watcher error: %v", err)

			case <-w.done:
				return
			}
		}
	}()
}

// schedule arms or pushes back the pending callback for path
func (w *Watcher) schedule(path string, onChange func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Reset(debounceInterval)
		return
	}
	w.timers[path] = time.AfterFunc(debounceInterval, func() {
		w.mu.Lock()
		delete(w.timers, path)
		stopped := w.stopped
		w.mu.Unlock()

		if !stopped {
			onChange(path)
		}
	})
}

// Files returns the absolute paths being watched
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}

// Stop ends monitoring. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	close(w.done)
	return w.fw.Close()
}
